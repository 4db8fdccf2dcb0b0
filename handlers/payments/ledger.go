package payments

import (
	"errors"

	"github.com/castrol-web/nyumbaninala-backend/db"
	"github.com/castrol-web/nyumbaninala-backend/models"

	"gorm.io/gorm"
)

// RecordParams is the normalized content of a successful payment event.
// Amounts arrive in Stripe's minor units and are converted on write.
type RecordParams struct {
	Type            models.DonationType
	AmountMinor     int64
	Currency        string
	Email           string
	EventId         string
	PaymentIntentId string
	SubscriptionId  string
	InvoiceId       string
	Metadata        map[string]string
}

// LedgerWriter appends donations to the ledger, once per Stripe event.
type LedgerWriter struct{}

func NewLedgerWriter() *LedgerWriter {
	return &LedgerWriter{}
}

// Record writes one immutable donation row. Stripe delivers events
// at least once, so the same event id may arrive again, possibly on
// another instance: an existing row makes this a no-op, and the unique
// index on stripe_event_id catches the concurrent case the pre-check
// cannot.
func (w *LedgerWriter) Record(params RecordParams) (*models.Donation, error) {
	if params.EventId != "" {
		var existing models.Donation
		if err := db.DB.First(&existing, "stripe_event_id = ?", params.EventId).Error; err == nil {
			return &existing, nil
		}
	}

	donation := models.Donation{
		Type:                  params.Type,
		Amount:                FromMinorUnits(params.AmountMinor),
		Currency:              params.Currency,
		Email:                 params.Email,
		Status:                models.DonationPaid,
		Metadata:              params.Metadata,
		StripeEventId:         params.EventId,
		StripePaymentIntentId: params.PaymentIntentId,
		StripeSubscriptionId:  params.SubscriptionId,
		StripeInvoiceId:       params.InvoiceId,
	}

	if err := db.DB.Create(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against a concurrent delivery of the same
			// event, hand back the row the winner persisted
			var existing models.Donation
			if fetchErr := db.DB.First(&existing, "stripe_event_id = ?", params.EventId).Error; fetchErr != nil {
				return nil, &PersistenceError{Op: "load duplicate donation", Err: fetchErr}
			}
			return &existing, nil
		}
		return nil, &PersistenceError{Op: "create donation", Err: err}
	}

	return &donation, nil
}
