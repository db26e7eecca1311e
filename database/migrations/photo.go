package migrations

import (
	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEventPhotosTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_photos table...")
	err := db.AutoMigrate(&models.EventPhoto{})
	if err != nil {
		configslog.Log.Error("Failed to migrate event_photos table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Event photos table migrated successfully")
	return nil
}
