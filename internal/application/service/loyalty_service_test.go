package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
)

func newLoyaltyFixture(customer *entity.Customer) (*LoyaltyService, *fakeCustomerRepo, *fakeSettingsRepo) {
	customers := newFakeCustomerRepo(customer)
	settings := newFakeSettingsRepo()
	svc := NewLoyaltyService(customers, settings, nil, "http://localhost:8080", testLogger())
	return svc, customers, settings
}

func TestAddStamps_Accrual(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890"}
	svc, _, _ := newLoyaltyFixture(customer)

	got, err := svc.AddStamps(context.Background(), customer.ID, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stamps != 4 || got.TotalStamps != 4 {
		t.Fatalf("stamps = %d/%d, want 4/4", got.Stamps, got.TotalStamps)
	}

	got, err = svc.AddStamps(context.Background(), customer.ID, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stamps != 10 || got.TotalStamps != 10 {
		t.Fatalf("stamps = %d/%d, want 10/10", got.Stamps, got.TotalStamps)
	}
}

func TestAddStamps_RejectsNonPositive(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890"}
	svc, _, _ := newLoyaltyFixture(customer)

	for _, n := range []int{0, -3} {
		if _, err := svc.AddStamps(context.Background(), customer.ID, n); err == nil {
			t.Fatalf("AddStamps(%d) must be rejected", n)
		}
	}
}

func TestRedeem_ConsumesBalanceKeepsLifetime(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890", Stamps: 10, TotalStamps: 25}
	svc, customers, _ := newLoyaltyFixture(customer)

	got, err := svc.Redeem(context.Background(), customer.ID, "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stamps != 0 {
		t.Fatalf("balance = %d, want 0 after redemption", got.Stamps)
	}
	if got.TotalStamps != 25 {
		t.Fatalf("lifetime = %d, must be untouched", got.TotalStamps)
	}

	if len(customers.redemptions) != 1 {
		t.Fatalf("expected one redemption record, got %d", len(customers.redemptions))
	}
	red := customers.redemptions[0]
	if red.StampsUsed != 10 {
		t.Fatalf("stamps used = %d, want the full balance", red.StampsUsed)
	}
	if red.Reward == "" || red.RedeemedBy != "budi" {
		t.Fatalf("redemption record incomplete: %+v", red)
	}
	if red.RewardValue != 35000 {
		t.Fatalf("reward value = %d, want the configured 35000", red.RewardValue)
	}
}

func TestRedeem_BelowTargetRejected(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890", Stamps: 9, TotalStamps: 9}
	svc, customers, _ := newLoyaltyFixture(customer)

	if _, err := svc.Redeem(context.Background(), customer.ID, "budi"); err == nil {
		t.Fatal("redemption below target must be rejected")
	}
	if customer.Stamps != 9 {
		t.Fatalf("rejected redemption must not touch the balance, got %d", customer.Stamps)
	}
	if len(customers.redemptions) != 0 {
		t.Fatal("rejected redemption must not record history")
	}
}

func TestCard(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890", Stamps: 7, TotalStamps: 17}
	svc, _, _ := newLoyaltyFixture(customer)

	card, err := svc.Card(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.CustomerName != "Siti" || card.Stamps != 7 || card.LifetimeStamps != 17 {
		t.Fatalf("unexpected card: %+v", card)
	}
	if card.Target != 10 {
		t.Fatalf("target = %d, want the configured 10", card.Target)
	}
}

func TestCardQR(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Siti", Phone: "081234567890"}
	svc, _, _ := newLoyaltyFixture(customer)

	png, err := svc.CardQR(customer.ID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected a PNG payload")
	}
	// PNG magic bytes.
	if png[0] != 0x89 || string(png[1:4]) != "PNG" {
		t.Fatal("payload is not a PNG")
	}
}
