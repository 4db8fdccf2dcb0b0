package payments

import (
	"encoding/json"

	"github.com/castrol-web/nyumbaninala-backend/models"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	stripe "github.com/stripe/stripe-go/v82"
)

// Dispatcher routes a verified Stripe event to its handling routine.
// The webhook is already acknowledged when it runs, so nothing here
// returns an error to the caller; failures go to the logs.
type Dispatcher struct {
	ledger *LedgerWriter
}

func NewDispatcher(ledger *LedgerWriter) *Dispatcher {
	return &Dispatcher{ledger: ledger}
}

func (d *Dispatcher) Dispatch(event stripe.Event) {
	switch event.Type {
	case "payment_intent.succeeded":
		d.handlePaymentIntentSucceeded(event)
	case "invoice.payment_succeeded":
		d.handleInvoicePaymentSucceeded(event)
	case "invoice.payment_failed":
		utils.LogError(nil, "Subscription payment failed, event "+event.ID)
	default:
		// Stripe adds event types over time, unknown ones are not errors
	}
}

func (d *Dispatcher) handlePaymentIntentSucceeded(event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		utils.LogError(err, "Error parsing PaymentIntent from event "+event.ID)
		return
	}

	_, err := d.ledger.Record(RecordParams{
		Type:            models.DonationOneTime,
		AmountMinor:     pi.Amount,
		Currency:        string(pi.Currency),
		Email:           pi.ReceiptEmail,
		EventId:         event.ID,
		PaymentIntentId: pi.ID,
		Metadata:        pi.Metadata,
	})
	if err != nil {
		utils.LogError(err, "Error recording one-time donation for event "+event.ID)
		return
	}

	utils.LogSuccess("One-time donation recorded for payment intent " + pi.ID)
}

func (d *Dispatcher) handleInvoicePaymentSucceeded(event stripe.Event) {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		utils.LogError(err, "Error parsing Invoice from event "+event.ID)
		return
	}

	_, err := d.ledger.Record(RecordParams{
		Type:           models.DonationSubscription,
		AmountMinor:    invoice.AmountPaid,
		Currency:       string(invoice.Currency),
		Email:          invoice.CustomerEmail,
		EventId:        event.ID,
		SubscriptionId: subscriptionIdFromInvoice(event.Data.Raw),
		InvoiceId:      invoice.ID,
	})
	if err != nil {
		utils.LogError(err, "Error recording subscription donation for event "+event.ID)
		return
	}

	utils.LogSuccess("Subscription donation recorded for invoice " + invoice.ID)
}

// subscriptionIdFromInvoice digs the subscription id out of the raw
// invoice payload. Newer Stripe API versions put it under
// parent.subscription_details, older ones at the top level.
func subscriptionIdFromInvoice(raw []byte) string {
	var invoiceData map[string]interface{}
	if err := json.Unmarshal(raw, &invoiceData); err != nil {
		return ""
	}

	if parent, ok := invoiceData["parent"].(map[string]interface{}); ok {
		if subDetails, ok := parent["subscription_details"].(map[string]interface{}); ok {
			if sub, ok := subDetails["subscription"].(string); ok && sub != "" {
				return sub
			}
		}
	}

	if v, ok := invoiceData["subscription"]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}
