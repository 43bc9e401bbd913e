package migration

import (
	"fmt"

	"gorm.io/gorm"

	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model the schema covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProfileModel{},
		&models.CredentialModel{},
		&models.ClientModel{},
		&models.ContractModel{},
		&models.EquipmentModel{},
		&models.TicketModel{},
		&models.TicketUpdateModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema from struct definitions.
// Development only; deployed environments run the versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
