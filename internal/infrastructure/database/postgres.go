package database

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/storekeep/backoffice-api/internal/config"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	applog "github.com/storekeep/backoffice-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *applog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.PointOfSale{},
		&entity.User{},
		&entity.Product{},
		&entity.ProductVariation{},
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.SystemSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData creates the default point of sale, admin user and system
// settings on first boot. The system invariant that at least one point of sale
// exists is established here.
func SeedDefaultData(db *gorm.DB, log *applog.Logger) error {
	var posCount int64
	if err := db.Model(&entity.PointOfSale{}).Count(&posCount).Error; err != nil {
		return err
	}

	var mainStore entity.PointOfSale
	if posCount == 0 {
		address := "123 Main St, New York, NY 10001"
		phone := "+1 (555) 123-4567"
		mainStore = entity.PointOfSale{
			Name:    "Main Store",
			Address: &address,
			Phone:   &phone,
			Status:  enum.StatusActive,
		}
		if err := db.Create(&mainStore).Error; err != nil {
			return fmt.Errorf("failed to seed default point of sale: %w", err)
		}
		log.Info().Str("point_of_sale", mainStore.Name).Msg("seeded default point of sale")
	} else if err := db.Order("created_at ASC").First(&mainStore).Error; err != nil {
		return err
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		adminEmail = "admin@example.com"
		adminPassword = "password"
	}

	var existingAdmin entity.User
	if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			Name:          "Admin User",
			Email:         adminEmail,
			Password:      string(hashed),
			Role:          enum.RoleAdmin,
			Status:        enum.StatusActive,
			PointOfSaleID: &mainStore.ID,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		if mainStore.ManagerID == nil {
			if err := db.Model(&mainStore).Update("manager_id", admin.ID).Error; err != nil {
				log.Warn().Err(err).Msg("failed to assign default store manager")
			}
		}
		log.Info().Str("email", adminEmail).Msg("seeded admin user")
	}

	var settings entity.SystemSettings
	if err := db.First(&settings).Error; err != nil {
		if err := db.Create(entity.DefaultSystemSettings()).Error; err != nil {
			return fmt.Errorf("failed to seed system settings: %w", err)
		}
		log.Info().Msg("seeded default system settings")
	}

	return nil
}
