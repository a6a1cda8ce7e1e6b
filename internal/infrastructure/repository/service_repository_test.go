package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func serviceColumns() []string {
	return []string{"id", "name", "unit", "price_per_unit", "duration_hours", "active", "created_at", "updated_at", "deleted_at"}
}

func TestServiceRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows(serviceColumns()).
			AddRow(id, "Cuci Komplit", int(enum.BillingUnitKg), int64(7000), 48, true, now, now, nil))

	service, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service == nil {
		t.Fatal("expected a service")
	}
	if service.Name != "Cuci Komplit" || service.PricePerUnit != 7000 {
		t.Fatalf("unexpected service: %+v", service)
	}
	if service.Unit != enum.BillingUnitKg {
		t.Fatalf("unit = %v, want kg", service.Unit)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestServiceRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "services"`).
		WillReturnRows(sqlmock.NewRows(serviceColumns()))

	service, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("missing row must not be an error: %v", err)
	}
	if service != nil {
		t.Fatalf("expected nil service, got %+v", service)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestServiceRepository_ListActiveOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "services" WHERE active = .+ ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(serviceColumns()).
			AddRow(uuid.New(), "Cuci Kering", int(enum.BillingUnitKg), int64(5000), 24, true, now, now, nil).
			AddRow(uuid.New(), "Setrika", int(enum.BillingUnitKg), int64(4000), 24, true, now, now, nil))

	services, err := repo.List(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
