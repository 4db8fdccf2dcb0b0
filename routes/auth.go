package routes

import (
	"github.com/castrol-web/nyumbaninala-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/login", auth.Login)
}
