package routes

import (
	"github.com/castrol-web/nyumbaninala-backend/handlers/partners"
	"github.com/castrol-web/nyumbaninala-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PartnersRoutes(r *gin.Engine) {
	r.POST("/partners", partners.CreatePartner)

	adminRoutes := r.Group("/partners")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", partners.GetAllPartners)
		adminRoutes.PUT("/:id/approve", partners.ApprovePartner)
		adminRoutes.PUT("/:id/reject", partners.RejectPartner)
	}
}
