package db

import (
	"fmt"

	"github.com/rockartdb/rockartdb-backend/src/config"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database. TranslateError is on so duplicate
// keys surface as gorm.ErrDuplicatedKey on either driver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate creates or updates every table, vocabulary and join table
// included.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.UserModel{},
		&models.SiteModel{},
		&models.RockArtTypeModel{},
		&models.RockArtCategoryModel{},
		&models.RockArtInfoModel{},
		&models.PanelModel{},
		&models.RockArtConditionModel{},
		&models.RockArtAttributesModel{},
		&models.AnthropomorphInventoryModel{},
		&models.EnigmaticInventoryModel{},
		&models.ZoomorphInventoryModel{},
		&models.GeneralIconographicAttributesModel{},
		&models.PhotogrammetryLogEntryModel{},
		&models.RockArtNoteModel{},
	)
}
