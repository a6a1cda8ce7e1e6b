package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func testUser(t *testing.T, username, pin string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &entity.User{
		ID:       uuid.New(),
		Username: username,
		PINHash:  string(hash),
		Role:     "cashier",
		Active:   true,
	}
}

func newAuthFixture(t *testing.T, users ...*entity.User) (*AuthService, *utils.JWTManager) {
	t.Helper()
	jwt := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(newFakeUserRepo(users...), jwt, testLogger()), jwt
}

func TestLogin(t *testing.T) {
	user := testUser(t, "budi", "123456")
	svc, jwt := newAuthFixture(t, user)

	result, err := svc.Login(context.Background(), "budi", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := jwt.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token must validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "budi" || claims.Role != "cashier" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_WrongPINAndUnknownUserLookAlike(t *testing.T) {
	svc, _ := newAuthFixture(t, testUser(t, "budi", "123456"))

	_, errWrongPIN := svc.Login(context.Background(), "budi", "999999")
	_, errUnknown := svc.Login(context.Background(), "siapa", "123456")

	if errWrongPIN != apperror.ErrInvalidPIN || errUnknown != apperror.ErrInvalidPIN {
		t.Fatalf("both failures must return the same error, got %v / %v", errWrongPIN, errUnknown)
	}
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	user := testUser(t, "budi", "123456")
	user.Active = false
	svc, _ := newAuthFixture(t, user)

	if _, err := svc.Login(context.Background(), "budi", "123456"); err != apperror.ErrInvalidPIN {
		t.Fatalf("inactive user must be rejected, got %v", err)
	}
}

func TestChangePIN(t *testing.T) {
	user := testUser(t, "budi", "123456")
	svc, _ := newAuthFixture(t, user)

	if err := svc.ChangePIN(context.Background(), "budi", "999999", "654321"); err != apperror.ErrInvalidPIN {
		t.Fatalf("wrong current PIN must be rejected, got %v", err)
	}
	if err := svc.ChangePIN(context.Background(), "budi", "123456", "12"); err == nil {
		t.Fatal("short new PIN must be rejected")
	}
	if err := svc.ChangePIN(context.Background(), "budi", "123456", "654321"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "budi", "654321"); err != nil {
		t.Fatalf("new PIN must work: %v", err)
	}
	if _, err := svc.Login(context.Background(), "budi", "123456"); err == nil {
		t.Fatal("old PIN must stop working")
	}
}

func TestValidateToken_WrongSecretRejected(t *testing.T) {
	user := testUser(t, "budi", "123456")
	svc, _ := newAuthFixture(t, user)

	result, err := svc.Login(context.Background(), "budi", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := utils.NewJWTManager("other-secret", time.Hour)
	if _, err := other.ValidateToken(result.Token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}
