package db

import (
	"errors"

	"github.com/castrol-web/nyumbaninala-backend/config"
	"github.com/castrol-web/nyumbaninala-backend/models"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the administrator account on first start so the
// admin routes are usable without a registration flow.
func SeedAdmin(cfg *config.Config) {
	if cfg.AdminPassword == "" {
		utils.LogInfo("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.User
	err := DB.First(&admin, "email = ?", cfg.AdminEmail).Error
	if err == nil {
		utils.LogInfo("Admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking for the admin user")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing the admin password")
		return
	}

	newAdmin := models.User{
		UserName: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     models.AdminRole,
	}
	if err := DB.Create(&newAdmin).Error; err != nil {
		utils.LogError(err, "Error seeding the admin user")
		return
	}

	utils.LogSuccess("Admin user created successfully")
}
