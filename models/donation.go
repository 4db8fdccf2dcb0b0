package models

import (
	"time"
)

type DonationType string

const (
	DonationOneTime      DonationType = "one_time"
	DonationSubscription DonationType = "subscription"
)

type DonationStatus string

const (
	DonationPaid DonationStatus = "paid"
)

// Donation is one row of the append-only donation ledger. Rows are
// written exactly once per Stripe event: StripeEventId carries a unique
// index so replayed deliveries cannot produce duplicates.
type Donation struct {
	ID                    string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type                  DonationType      `json:"type" gorm:"type:varchar(20)"`
	Amount                float64           `json:"amount"`
	Currency              string            `json:"currency" gorm:"type:varchar(10)"`
	Email                 string            `json:"email"`
	Status                DonationStatus    `json:"status" gorm:"type:varchar(20)"`
	Metadata              map[string]string `json:"metadata" gorm:"serializer:json"`
	StripeEventId         string            `json:"stripeEventId" gorm:"uniqueIndex"`
	StripePaymentIntentId string            `json:"stripePaymentIntentId"`
	StripeSubscriptionId  string            `json:"stripeSubscriptionId"`
	StripeInvoiceId       string            `json:"stripeInvoiceId"`
	CreatedAt             time.Time         `json:"createdAt"`
}

func (Donation) TableName() string {
	return "donations"
}
