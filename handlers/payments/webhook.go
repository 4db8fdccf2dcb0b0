package payments

import (
	"io"
	"net/http"

	"github.com/castrol-web/nyumbaninala-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// VerifyEvent checks the payload against the Stripe-Signature header
// and the shared secret. The payload must be the exact bytes Stripe
// sent: the signature covers them, so a re-serialized body can never
// verify.
func VerifyEvent(payload []byte, signatureHeader, secret string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, secret)
	if err != nil {
		return stripe.Event{}, &SignatureError{Err: err}
	}
	return event, nil
}

// Webhook receives Stripe's asynchronous payment events
// @Summary Stripe webhook endpoint
// @Description Verify and record asynchronous payment events from Stripe
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature of the raw body"
// @Success 200 {object} map[string]interface{} "received: true"
// @Failure 400 {object} map[string]string "error: signature verification failed"
// @Router /payments/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	// raw body first: no JSON binding may touch this route's request
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError(err, "Error reading the webhook request body")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	event, err := VerifyEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		// 400 so Stripe redelivers; an unverified event is never dispatched
		utils.LogError(err, "Stripe webhook rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	// Acknowledge before dispatching. A ledger failure past this point
	// is logged rather than answered with a 5xx, otherwise Stripe would
	// redeliver an event we may have partially recorded.
	c.JSON(http.StatusOK, gin.H{"received": true})

	h.dispatcher.Dispatch(event)
}
