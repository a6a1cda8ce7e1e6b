package database

import (
	"fmt"
	"log"

	"github.com/rizkyfh/laundry-pos-api/internal/config"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.StoreSettings{},
		&entity.Service{},
		&entity.Promo{},
		&entity.Customer{},
		&entity.RewardRedemption{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderStatusLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the owner account, the store settings row and a
// starter service catalog on an empty database.
func SeedDefaultData(db *gorm.DB, cfg *config.StoreConfig) error {
	log.Println("Seeding default data...")

	var existingOwner entity.User
	if err := db.Where("username = ?", cfg.OwnerUsername).First(&existingOwner).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPIN), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash owner PIN: %w", err)
		}
		owner := entity.User{
			Username: cfg.OwnerUsername,
			PINHash:  string(hash),
			Role:     "owner",
			Active:   true,
		}
		if err := db.Create(&owner).Error; err != nil {
			log.Printf("Warning: failed to create owner user: %v", err)
		} else {
			log.Printf("Owner user created: %s", cfg.OwnerUsername)
		}
	}

	var settings entity.StoreSettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.StoreSettings{
			ID:             1,
			StoreName:      cfg.Name,
			Address:        cfg.Address,
			Phone:          cfg.Phone,
			FooterMessage:  cfg.FooterMessage,
			InvoicePrefix:  cfg.InvoicePrefix,
			MinBillableKg:  cfg.MinBillableKg,
			EnforceMinimum: cfg.EnforceMinimum,
			MinTrxPerStamp: 20000,
			StampTarget:    10,
			RewardOption:   "Gratis cuci 1x (maks 5kg)",
			RewardValue:    35000,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create store settings: %v", err)
		}
	}

	var count int64
	db.Model(&entity.Service{}).Count(&count)
	if count == 0 {
		services := []entity.Service{
			{Name: "Cuci Komplit", Unit: enum.BillingUnitKg, PricePerUnit: 7000, DurationHours: 48, Active: true},
			{Name: "Cuci Kering", Unit: enum.BillingUnitKg, PricePerUnit: 5000, DurationHours: 24, Active: true},
			{Name: "Setrika", Unit: enum.BillingUnitKg, PricePerUnit: 4000, DurationHours: 24, Active: true},
			{Name: "Bed Cover", Unit: enum.BillingUnitPcs, PricePerUnit: 25000, DurationHours: 72, Active: true},
			{Name: "Selimut", Unit: enum.BillingUnitPcs, PricePerUnit: 15000, DurationHours: 48, Active: true},
		}
		for i := range services {
			if err := db.Create(&services[i]).Error; err != nil {
				log.Printf("Warning: failed to seed service %s: %v", services[i].Name, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
