package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/internal/infrastructure/cache"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

const loyaltyCardTTL = 5 * time.Minute

// LoyaltyService accrues and redeems loyalty stamps and serves the
// public card view.
type LoyaltyService struct {
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	cache        *cache.Cache
	baseURL      string
	log          *logrus.Logger
}

// NewLoyaltyService creates a new loyalty service
func NewLoyaltyService(
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	cache *cache.Cache,
	baseURL string,
	log *logrus.Logger,
) *LoyaltyService {
	return &LoyaltyService{
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		baseURL:      baseURL,
		log:          log,
	}
}

// AddStamps is the manual cashier accrual: n stamps are added to both
// the resettable balance and the lifetime counter atomically. How many
// stamps a settled order earns is store policy, not a formula here.
func (s *LoyaltyService) AddStamps(ctx context.Context, customerID uuid.UUID, n int) (*entity.Customer, error) {
	if n <= 0 {
		return nil, apperror.NewBadRequestError("Stamp count must be positive")
	}

	if err := s.customerRepo.AddStamps(ctx, customerID, n); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, cardCacheKey(customerID))

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"stamps":      n,
		"balance":     customer.Stamps,
	}).Info("loyalty stamps added")

	return customer, nil
}

// Redeem claims the reward once the balance has reached the configured
// target. The full balance is consumed, so redemption resets it to
// zero; the lifetime counter and the history entry survive. A balance
// below target is refused without mutating anything.
func (s *LoyaltyService) Redeem(ctx context.Context, customerID uuid.UUID, redeemedBy string) (*entity.Customer, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.Stamps < settings.StampTarget {
		return nil, apperror.ErrInsufficientStamps
	}

	redemption := &entity.RewardRedemption{
		CustomerID:  customerID,
		Reward:      settings.RewardOption,
		RewardValue: settings.RewardValue,
		StampsUsed:  customer.Stamps,
		RedeemedBy:  redeemedBy,
	}
	if err := s.customerRepo.Redeem(ctx, redemption); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, cardCacheKey(customerID))

	s.log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"reward":      settings.RewardOption,
		"stamps_used": redemption.StampsUsed,
	}).Info("loyalty reward redeemed")

	return s.customerRepo.GetByID(ctx, customerID)
}

// LoyaltyCard is the public, read-only card view. It exposes only the
// requested customer's program data.
type LoyaltyCard struct {
	CustomerName   string                    `json:"customer_name"`
	Stamps         int                       `json:"stamps"`
	Target         int                       `json:"target"`
	LifetimeStamps int                       `json:"lifetime_stamps"`
	RewardOption   string                    `json:"reward_option"`
	StoreName      string                    `json:"store_name"`
	Redemptions    []entity.RewardRedemption `json:"redemptions"`
}

// Card returns the loyalty card for a customer, cache-first.
func (s *LoyaltyService) Card(ctx context.Context, customerID uuid.UUID) (*LoyaltyCard, error) {
	key := cardCacheKey(customerID)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var card LoyaltyCard
		if err := json.Unmarshal([]byte(raw), &card); err == nil {
			return &card, nil
		}
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	redemptions, err := s.customerRepo.ListRedemptions(ctx, customerID)
	if err != nil {
		return nil, err
	}

	card := &LoyaltyCard{
		CustomerName:   customer.Name,
		Stamps:         customer.Stamps,
		Target:         settings.StampTarget,
		LifetimeStamps: customer.TotalStamps,
		RewardOption:   settings.RewardOption,
		StoreName:      settings.StoreName,
		Redemptions:    redemptions,
	}

	if raw, err := json.Marshal(card); err == nil {
		_ = s.cache.Set(ctx, key, string(raw), loyaltyCardTTL)
	}
	return card, nil
}

// CardURL returns the public link to a customer's card.
func (s *LoyaltyService) CardURL(customerID uuid.UUID) string {
	return s.baseURL + "/api/v1/loyalty/" + customerID.String()
}

// CardQR renders the public card link as a QR code PNG.
func (s *LoyaltyService) CardQR(customerID uuid.UUID, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(s.CardURL(customerID), qrcode.Medium, size)
}

func cardCacheKey(customerID uuid.UUID) string {
	return "loyalty:card:" + customerID.String()
}
