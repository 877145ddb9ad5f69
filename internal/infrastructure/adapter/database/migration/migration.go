package migration

import (
	"gorm.io/gorm"

	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/model"
)

// MigrationManager keeps the schema in sync with the models
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll applies schema migrations for every model. Plans migrate first
// so the foreign keys on users and history rows have a target table.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	models := []interface{}{
		&model.SubscriptionPlan{},
		&model.User{},
		&model.Transaction{},
		&model.SubscriptionHistory{},
	}

	for _, mdl := range models {
		if err := m.db.AutoMigrate(mdl); err != nil {
			m.logger.Error("Failed to migrate model", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
