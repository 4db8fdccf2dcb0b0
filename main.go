package main

import (
	"log"

	"github.com/castrol-web/nyumbaninala-backend/config"
	"github.com/castrol-web/nyumbaninala-backend/db"
	"github.com/castrol-web/nyumbaninala-backend/routes"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Nyumbani Nala API
// @version 1.0
// @description Backend for the Nyumbani Nala donation site
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db.InitDB(cfg)
	db.SeedAdmin(cfg)

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Project image uploads will not work correctly.")
	}

	r := routes.SetupRouter(cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting the server: ", err)
	}
}
