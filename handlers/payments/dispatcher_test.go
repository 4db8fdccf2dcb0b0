package payments

import (
	"encoding/json"
	"testing"

	"github.com/castrol-web/nyumbaninala-backend/testutils"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
)

func paymentIntentEvent(eventId string) stripe.Event {
	return stripe.Event{
		ID:   eventId,
		Type: "payment_intent.succeeded",
		Data: &stripe.EventData{
			Raw: json.RawMessage(`{
				"id": "pi_1",
				"object": "payment_intent",
				"amount": 5000,
				"currency": "eur",
				"receipt_email": "a@b.com",
				"metadata": {"donorName": "Ada"}
			}`),
		},
	}
}

func TestDispatch_PaymentIntentSucceeded(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "donations" WHERE stripe_event_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donations" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	dispatcher := NewDispatcher(NewLedgerWriter())
	dispatcher.Dispatch(paymentIntentEvent("evt_1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_DuplicateEventRecordsOnce(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// first delivery: no existing row, insert
	mock.ExpectQuery(`SELECT (.+) FROM "donations" WHERE stripe_event_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donations" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	// redelivery of the same event: the pre-check finds the row, no insert
	mock.ExpectQuery(`SELECT (.+) FROM "donations" WHERE stripe_event_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "stripe_event_id"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", "evt_1"))

	dispatcher := NewDispatcher(NewLedgerWriter())
	dispatcher.Dispatch(paymentIntentEvent("evt_1"))
	dispatcher.Dispatch(paymentIntentEvent("evt_1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_InvoicePaymentSucceeded(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "donations" WHERE stripe_event_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donations" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("223e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	event := stripe.Event{
		ID:   "evt_2",
		Type: "invoice.payment_succeeded",
		Data: &stripe.EventData{
			Raw: json.RawMessage(`{
				"id": "in_1",
				"object": "invoice",
				"amount_paid": 1000,
				"currency": "eur",
				"customer_email": "a@b.com",
				"parent": {"subscription_details": {"subscription": "sub_1"}}
			}`),
		},
	}

	dispatcher := NewDispatcher(NewLedgerWriter())
	dispatcher.Dispatch(event)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_InvoicePaymentFailed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	event := stripe.Event{
		ID:   "evt_3",
		Type: "invoice.payment_failed",
		Data: &stripe.EventData{Raw: json.RawMessage(`{"id": "in_1", "object": "invoice"}`)},
	}

	dispatcher := NewDispatcher(NewLedgerWriter())
	dispatcher.Dispatch(event)

	// observability only: no ledger traffic
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_UnknownEventTypeIgnored(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	event := stripe.Event{
		ID:   "evt_4",
		Type: "charge.dispute.created",
		Data: &stripe.EventData{Raw: json.RawMessage(`{"id": "dp_1"}`)},
	}

	dispatcher := NewDispatcher(NewLedgerWriter())
	dispatcher.Dispatch(event)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionIdFromInvoice(t *testing.T) {
	cases := map[string]string{
		`{"parent": {"subscription_details": {"subscription": "sub_1"}}}`: "sub_1",
		`{"subscription": "sub_2"}`: "sub_2",
		`{"parent": {"subscription_details": {"subscription": ""}}, "subscription": "sub_3"}`: "sub_3",
		`{"id": "in_1"}`: "",
	}

	for raw, expected := range cases {
		assert.Equal(t, expected, subscriptionIdFromInvoice([]byte(raw)), "payload %s", raw)
	}
}
