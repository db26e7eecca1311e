package configsdatabase

import (
	"gather.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the Postgres connection described by dsn and keeps it as the
// process-wide handle returned by GetDB.
func InitDB(dsn string) {
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	configslog.SLog.Info("database connection established")
}

// GetDB returns the shared *gorm.DB. InitDB must have been called first.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the underlying sql.DB pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("failed to access underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("failed to close database connection", zap.Error(err))
	}
}

// SetDB swaps the shared handle. Used by tests that inject their own DB.
func SetDB(database *gorm.DB) {
	db = database
}
