package routes

import (
	"github.com/castrol-web/nyumbaninala-backend/handlers/payments"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine, h *payments.Handler) {
	paymentRoutes := r.Group("/payments")
	{
		paymentRoutes.POST("/create-intent", h.CreateIntent)
		paymentRoutes.POST("/create-subscription-setup", h.CreateSubscriptionSetup)
		paymentRoutes.POST("/activate-subscription", h.ActivateSubscription)
		paymentRoutes.POST("/create-subscription", h.CreateSubscription)
		// the webhook handler reads the raw body itself, keep this route
		// free of any body-binding middleware
		paymentRoutes.POST("/webhook", h.Webhook)
	}
}
