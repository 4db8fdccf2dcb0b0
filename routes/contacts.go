package routes

import (
	"github.com/castrol-web/nyumbaninala-backend/handlers/contacts"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine) {
	r.POST("/contact", contacts.CreateContact)
}
