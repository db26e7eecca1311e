package migrations

import (
	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTablesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tables table...")
	err := db.AutoMigrate(&models.Table{})
	if err != nil {
		configslog.Log.Error("Failed to migrate tables table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tables table migrated successfully")
	return nil
}
