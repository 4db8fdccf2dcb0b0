package payments

import (
	"errors"
	"net/http"

	"github.com/castrol-web/nyumbaninala-backend/config"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	"github.com/gin-gonic/gin"
)

// Handler is the HTTP layer over the payment core. It owns the
// orchestrator for intent creation and the dispatcher for webhook
// events; both get their collaborators injected here.
type Handler struct {
	orchestrator  *Orchestrator
	dispatcher    *Dispatcher
	webhookSecret string
}

func NewHandler(cfg *config.Config, gateway Gateway) *Handler {
	return &Handler{
		orchestrator:  NewOrchestrator(gateway, cfg.Currency),
		dispatcher:    NewDispatcher(NewLedgerWriter()),
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

type createIntentRequest struct {
	Amount float64 `json:"amount"`
	Name   string  `json:"name"`
	Email  string  `json:"email" binding:"required,email"`
}

type subscriptionSetupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

type activateSubscriptionRequest struct {
	CustomerId      string  `json:"customerId"`
	PaymentMethodId string  `json:"paymentMethodId"`
	Amount          float64 `json:"amount"`
}

// CreateIntent starts a one-time donation
// @Summary Create a payment intent for a one-time donation
// @Description Create a Stripe payment intent and return its client secret
// @Tags payments
// @Accept json
// @Produce json
// @Param donation body createIntentRequest true "Donation amount and donor details"
// @Success 200 {object} IntentResult
// @Failure 400 {object} map[string]string "error: invalid amount"
// @Failure 500 {object} map[string]string "error: Internal server error"
// @Router /payments/create-intent [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.orchestrator.CreateOneTimeIntent(req.Amount, req.Name, req.Email)
	if err != nil {
		h.respondError(c, err, "Error creating the payment intent")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateSubscriptionSetup starts the two-step recurring donation flow
// @Summary Create a customer and a setup intent
// @Description Create a Stripe customer and a setup intent to collect a reusable card
// @Tags payments
// @Accept json
// @Produce json
// @Param donor body subscriptionSetupRequest true "Donor details"
// @Success 200 {object} SetupResult
// @Failure 400 {object} map[string]string "error: invalid input"
// @Failure 500 {object} map[string]string "error: Internal server error"
// @Router /payments/create-subscription-setup [post]
func (h *Handler) CreateSubscriptionSetup(c *gin.Context) {
	var req subscriptionSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.orchestrator.CreateSubscriptionSetup(req.Name, req.Email)
	if err != nil {
		h.respondError(c, err, "Error creating the subscription setup")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ActivateSubscription finishes the two-step recurring donation flow
// @Summary Activate a monthly subscription
// @Description Create the monthly price and subscription for a customer with a stored payment method
// @Tags payments
// @Accept json
// @Produce json
// @Param activation body activateSubscriptionRequest true "Customer, payment method and amount"
// @Success 200 {object} ActivationResult
// @Failure 400 {object} map[string]string "error: invalid input"
// @Failure 500 {object} map[string]string "error: Internal server error"
// @Router /payments/activate-subscription [post]
func (h *Handler) ActivateSubscription(c *gin.Context) {
	var req activateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.orchestrator.ActivateSubscription(req.CustomerId, req.PaymentMethodId, req.Amount)
	if err != nil {
		h.respondError(c, err, "Error activating the subscription")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateSubscription starts a monthly donation in a single call
// @Summary Create a monthly subscription
// @Description Create customer, price and incomplete subscription; returns a payment or setup client secret
// @Tags payments
// @Accept json
// @Produce json
// @Param donation body createIntentRequest true "Donation amount and donor details"
// @Success 200 {object} IntentResult
// @Failure 400 {object} map[string]string "error: invalid amount"
// @Failure 500 {object} map[string]string "error: Internal server error"
// @Router /payments/create-subscription [post]
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.orchestrator.CreateSubscriptionCombined(req.Amount, req.Name, req.Email)
	if err != nil {
		h.respondError(c, err, "Error creating the subscription")
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError maps the payment error taxonomy onto HTTP. Validation
// problems go back verbatim; everything else is logged in full and
// answered with a generic message so Stripe error bodies never leak.
func (h *Handler) respondError(c *gin.Context, err error, context string) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}

	utils.LogError(err, context)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
