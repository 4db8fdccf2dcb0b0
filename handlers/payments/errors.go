package payments

import "fmt"

// ValidationError reports a bad or missing request field. Handlers
// surface it as a 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GatewayError wraps a failed Stripe call. Handlers surface it as a
// generic 500; the underlying error only reaches the logs.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("stripe %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// SignatureError reports a webhook payload that failed signature
// verification. The event is discarded and never dispatched.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
}

func (e *SignatureError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed ledger write. The webhook has already
// been acknowledged when it occurs, so it is logged and monitored, not
// returned to the provider.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
