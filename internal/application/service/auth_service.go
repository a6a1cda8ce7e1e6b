package service

import (
	"context"

	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles PIN login. A successful login mints a session
// token; there is no server-side session state.
type AuthService struct {
	userRepo repository.UserRepository
	jwt      *utils.JWTManager
	log      *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwt *utils.JWTManager, log *logrus.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, log: log}
}

// LoginResult is the session issued on PIN success.
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login verifies the PIN and issues a session token. Unknown user and
// wrong PIN are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, pin string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrInvalidPIN
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(pin)); err != nil {
		s.log.WithField("username", username).Warn("failed login attempt")
		return nil, apperror.ErrInvalidPIN
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// ChangePIN updates a user's PIN after verifying the current one.
func (s *AuthService) ChangePIN(ctx context.Context, username, currentPIN, newPIN string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrInvalidPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(currentPIN)); err != nil {
		return apperror.ErrInvalidPIN
	}
	if len(newPIN) < 4 {
		return apperror.NewBadRequestError("PIN must be at least 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PINHash = string(hash)
	return s.userRepo.Update(ctx, user)
}
