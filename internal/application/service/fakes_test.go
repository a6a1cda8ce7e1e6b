package service

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/internal/realtime"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (p *fakePublisher) Publish(e realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.InvoiceNo == invoiceNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, updatedBy string) error {
	order, ok := r.orders[id]
	if !ok {
		return apperror.ErrNotFound
	}
	order.Status = status
	order.StatusLogs = append(order.StatusLogs, entity.OrderStatusLog{
		OrderID:   id,
		Status:    status,
		UpdatedBy: updatedBy,
	})
	return nil
}

func (r *fakeOrderRepo) UpdatePayment(ctx context.Context, id uuid.UUID, payment *entity.Payment) error {
	order, ok := r.orders[id]
	if !ok {
		return apperror.ErrNotFound
	}
	order.Payment = *payment
	return nil
}

func (r *fakeOrderRepo) UpdateDamageNote(ctx context.Context, id uuid.UUID, note *string) error {
	order, ok := r.orders[id]
	if !ok {
		return apperror.ErrNotFound
	}
	order.DamageNote = note
	return nil
}

func (r *fakeOrderRepo) IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error) {
	order, ok := r.orders[id]
	if !ok {
		return 0, apperror.ErrNotFound
	}
	before := order.PrintCount
	order.PrintCount++
	return before, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *pagination.PaginationParams, filter *repository.OrderFilter) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return r.services[id], nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	out := make([]entity.Service, 0, len(r.services))
	for _, s := range r.services {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	out := make([]entity.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakePromoRepo struct {
	promos map[uuid.UUID]*entity.Promo
}

func newFakePromoRepo(promos ...*entity.Promo) *fakePromoRepo {
	r := &fakePromoRepo{promos: make(map[uuid.UUID]*entity.Promo)}
	for _, p := range promos {
		r.promos[p.ID] = p
	}
	return r
}

func (r *fakePromoRepo) Create(ctx context.Context, promo *entity.Promo) error {
	if promo.ID == uuid.Nil {
		promo.ID = uuid.New()
	}
	r.promos[promo.ID] = promo
	return nil
}

func (r *fakePromoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promo, error) {
	return r.promos[id], nil
}

func (r *fakePromoRepo) Update(ctx context.Context, promo *entity.Promo) error {
	r.promos[promo.ID] = promo
	return nil
}

func (r *fakePromoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.promos, id)
	return nil
}

func (r *fakePromoRepo) List(ctx context.Context, activeOnly bool) ([]entity.Promo, error) {
	out := make([]entity.Promo, 0, len(r.promos))
	for _, p := range r.promos {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers   map[uuid.UUID]*entity.Customer
	redemptions []entity.RewardRedemption
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) AddStamps(ctx context.Context, id uuid.UUID, n int) error {
	customer, ok := r.customers[id]
	if !ok {
		return apperror.ErrNotFound
	}
	customer.Stamps += n
	customer.TotalStamps += n
	return nil
}

func (r *fakeCustomerRepo) Redeem(ctx context.Context, redemption *entity.RewardRedemption) error {
	customer, ok := r.customers[redemption.CustomerID]
	if !ok {
		return apperror.ErrNotFound
	}
	if customer.Stamps < redemption.StampsUsed {
		return apperror.ErrInsufficientStamps
	}
	customer.Stamps -= redemption.StampsUsed
	r.redemptions = append(r.redemptions, *redemption)
	return nil
}

func (r *fakeCustomerRepo) ListRedemptions(ctx context.Context, customerID uuid.UUID) ([]entity.RewardRedemption, error) {
	out := make([]entity.RewardRedemption, 0)
	for _, red := range r.redemptions {
		if red.CustomerID == customerID {
			out = append(out, red)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *entity.StoreSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: &entity.StoreSettings{
		ID:             1,
		StoreName:      "Laundry Berkah",
		Address:        "Jl. Melati No. 3",
		Phone:          "081234567890",
		FooterMessage:  "Bersih, wangi, rapi",
		InvoicePrefix:  "INV",
		MinBillableKg:  3,
		EnforceMinimum: true,
		MinTrxPerStamp: 20000,
		StampTarget:    10,
		RewardOption:   "Gratis cuci 1x (maks 5kg)",
		RewardValue:    35000,
	}}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.StoreSettings) error {
	r.settings = settings
	return nil
}
