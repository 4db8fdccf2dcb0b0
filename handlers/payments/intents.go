package payments

import (
	stripe "github.com/stripe/stripe-go/v82"
)

// IntentResult is what the client needs to finish a payment: the secret
// to confirm, and whether it belongs to a payment intent or a setup
// intent. The frontend must handle both tags.
type IntentResult struct {
	ClientSecret string `json:"clientSecret"`
	Type         string `json:"type"` // "payment" or "setup"
}

// SetupResult is returned by the two-step subscription flow.
type SetupResult struct {
	ClientSecret string `json:"clientSecret"`
	CustomerId   string `json:"customerId"`
}

// ActivationResult carries Stripe's subscription status verbatim.
type ActivationResult struct {
	SubscriptionId string `json:"subscriptionId"`
	Status         string `json:"status"`
}

// Orchestrator decides which sequence of Stripe calls a donation
// request needs. It holds no request state; every operation works from
// the identifiers the caller supplies.
type Orchestrator struct {
	gateway  Gateway
	currency string
}

func NewOrchestrator(gateway Gateway, currency string) *Orchestrator {
	return &Orchestrator{gateway: gateway, currency: currency}
}

// CreateOneTimeIntent creates a card payment intent for a single
// donation. The donor name travels as metadata so the webhook can
// record it with the donation.
func (o *Orchestrator) CreateOneTimeIntent(amount float64, name, email string) (*IntentResult, error) {
	if amount <= 0 {
		return nil, &ValidationError{Message: "amount must be a positive number"}
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(amount)),
		Currency:           stripe.String(o.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.AddMetadata("donorName", name)

	pi, err := o.gateway.CreatePaymentIntent(params)
	if err != nil {
		return nil, err
	}

	return &IntentResult{ClientSecret: pi.ClientSecret, Type: "payment"}, nil
}

// CreateSubscriptionSetup creates a customer and a setup intent so the
// client can collect a reusable card before the subscription is
// activated with ActivateSubscription.
func (o *Orchestrator) CreateSubscriptionSetup(name, email string) (*SetupResult, error) {
	cust, err := o.gateway.CreateCustomer(&stripe.CustomerParams{
		Name:  stripe.String(name),
		Email: stripe.String(email),
	})
	if err != nil {
		return nil, err
	}

	si, err := o.gateway.CreateSetupIntent(&stripe.SetupIntentParams{
		Customer:           stripe.String(cust.ID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return nil, err
	}

	return &SetupResult{ClientSecret: si.ClientSecret, CustomerId: cust.ID}, nil
}

// ActivateSubscription creates the monthly price and starts the
// subscription on a customer whose payment method was collected
// earlier. Stripe's status string is passed through uninterpreted.
func (o *Orchestrator) ActivateSubscription(customerId, paymentMethodId string, amount float64) (*ActivationResult, error) {
	if amount <= 0 {
		return nil, &ValidationError{Message: "amount must be a positive number"}
	}
	if customerId == "" || paymentMethodId == "" {
		return nil, &ValidationError{Message: "customerId and paymentMethodId are required"}
	}

	price, err := o.createMonthlyPrice(amount)
	if err != nil {
		return nil, err
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customerId),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
		DefaultPaymentMethod: stripe.String(paymentMethodId),
	}
	subParams.AddExpand("latest_invoice")

	sub, err := o.gateway.CreateSubscription(subParams)
	if err != nil {
		return nil, err
	}

	return &ActivationResult{SubscriptionId: sub.ID, Status: string(sub.Status)}, nil
}

// CreateSubscriptionCombined is the single-call subscription flow:
// customer, monthly price and an incomplete subscription in one go.
// When the first invoice is immediately payable its client secret is
// returned as a payment; a $0 or trial first period produces no payable
// invoice, so a setup intent is substituted to still collect the card.
func (o *Orchestrator) CreateSubscriptionCombined(amount float64, name, email string) (*IntentResult, error) {
	if amount <= 0 {
		return nil, &ValidationError{Message: "amount must be a positive number"}
	}

	cust, err := o.gateway.CreateCustomer(&stripe.CustomerParams{
		Name:  stripe.String(name),
		Email: stripe.String(email),
	})
	if err != nil {
		return nil, err
	}

	price, err := o.createMonthlyPrice(amount)
	if err != nil {
		return nil, err
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(cust.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.confirmation_secret")

	sub, err := o.gateway.CreateSubscription(subParams)
	if err != nil {
		return nil, err
	}

	if secret := invoiceClientSecret(sub.LatestInvoice); secret != "" {
		return &IntentResult{ClientSecret: secret, Type: "payment"}, nil
	}

	si, err := o.gateway.CreateSetupIntent(&stripe.SetupIntentParams{
		Customer: stripe.String(cust.ID),
	})
	if err != nil {
		return nil, err
	}

	return &IntentResult{ClientSecret: si.ClientSecret, Type: "setup"}, nil
}

func (o *Orchestrator) createMonthlyPrice(amount float64) (*stripe.Price, error) {
	return o.gateway.CreatePrice(&stripe.PriceParams{
		UnitAmount: stripe.Int64(ToMinorUnits(amount)),
		Currency:   stripe.String(o.currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String("Monthly Donation"),
		},
	})
}

func invoiceClientSecret(invoice *stripe.Invoice) string {
	if invoice == nil || invoice.ConfirmationSecret == nil {
		return ""
	}
	return invoice.ConfirmationSecret.ClientSecret
}
