package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// partialIndexes back the one-booking-per-slot and one-active-membership rules.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_trainer_slot
        ON appointments (trainer_id, appointment_date)
        WHERE status <> 'Cancelled'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_memberships_active_trainee
        ON memberships (trainee_id)
        WHERE is_active`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Trainee{},
		&models.Trainer{},
		&models.Appointment{},
		&models.Membership{},
		&models.Billing{},
		&models.CarePlan{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
