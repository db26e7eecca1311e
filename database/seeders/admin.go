package seeders

import (
	"errors"
	"os"

	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAdmin creates the initial admin account from the
// ADMIN_EMAIL and ADMIN_PASSWORD environment variables. It is a no-op
// when the account already exists or the variables are unset.
func SeedSystemAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Admin user '%s' already exists, skipping.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Failed to check for existing admin user",
			zap.String("email", email),
			zap.Error(result.Error),
		)
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Failed to hash admin password", zap.Error(err))
		return err
	}

	admin := models.User{
		Name:         "System Admin",
		Email:        email,
		PasswordHash: string(hash),
		IsSystem:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Failed to create admin user",
			zap.String("email", email),
			zap.Error(err),
		)
		return err
	}

	configslog.SLog.Infof("Admin user '%s' created.", email)
	return nil
}
