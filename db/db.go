package db

import (
	"github.com/castrol-web/nyumbaninala-backend/config"
	"github.com/castrol-web/nyumbaninala-backend/models"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) {
	var err error
	// TranslateError so a violated unique index surfaces as gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         utils.GetGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Project{},
		&models.Partner{},
		&models.Donation{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
