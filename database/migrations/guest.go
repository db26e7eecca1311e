package migrations

import (
	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guests table...")
	err := db.AutoMigrate(&models.Guest{})
	if err != nil {
		configslog.Log.Error("Failed to migrate guests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Guests table migrated successfully")
	return nil
}
