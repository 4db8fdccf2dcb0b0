package payments

import (
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Gateway is the thin surface of the Stripe API the orchestrator and
// webhook flow need. The production implementation is StripeGateway;
// tests use a stub.
type Gateway interface {
	CreatePaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	CreatePrice(params *stripe.PriceParams) (*stripe.Price, error)
	CreateSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	CreateSetupIntent(params *stripe.SetupIntentParams) (*stripe.SetupIntent, error)
}

// StripeGateway calls Stripe through a dedicated client instead of the
// package-level stripe.Key, so the secret lives in config and tests can
// swap the whole gateway out.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	// Bounded wait on every Stripe call; neither side retries here,
	// the client retries intent creation and Stripe redelivers webhooks.
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: 8 * time.Second},
	})
	api := client.New(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreatePaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create payment intent", Err: err}
	}
	return pi, nil
}

func (g *StripeGateway) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	cust, err := g.api.Customers.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create customer", Err: err}
	}
	return cust, nil
}

func (g *StripeGateway) CreatePrice(params *stripe.PriceParams) (*stripe.Price, error) {
	price, err := g.api.Prices.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create price", Err: err}
	}
	return price, nil
}

func (g *StripeGateway) CreateSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create subscription", Err: err}
	}
	return sub, nil
}

func (g *StripeGateway) CreateSetupIntent(params *stripe.SetupIntentParams) (*stripe.SetupIntent, error) {
	si, err := g.api.SetupIntents.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create setup intent", Err: err}
	}
	return si, nil
}
