package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/castrol-web/nyumbaninala-backend/config"
	"github.com/castrol-web/nyumbaninala-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe does:
// an HMAC-SHA256 of "<timestamp>.<payload>" under the shared secret.
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d", at.Unix())
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, dataObject string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","object":"event","api_version":%q,"type":%q,"data":{"object":%s}}`,
		stripe.APIVersion, eventType, dataObject,
	))
}

func TestVerifyEvent_ValidSignature(t *testing.T) {
	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)
	header := signPayload(payload, testWebhookSecret, time.Now())

	event, err := VerifyEvent(payload, header, testWebhookSecret)

	assert.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, stripe.EventType("payment_intent.succeeded"), event.Type)
}

func TestVerifyEvent_TamperedSignature(t *testing.T) {
	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)
	header := signPayload(payload, testWebhookSecret, time.Now())

	// flip the last hex digit of the v1 signature
	last := header[len(header)-1]
	if last == 'a' {
		last = 'b'
	} else {
		last = 'a'
	}
	tampered := header[:len(header)-1] + string(last)

	_, err := VerifyEvent(payload, tampered, testWebhookSecret)

	var sigErr *SignatureError
	assert.ErrorAs(t, err, &sigErr)
}

func TestVerifyEvent_ReserializedPayloadFails(t *testing.T) {
	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)
	header := signPayload(payload, testWebhookSecret, time.Now())

	// parse and re-encode: same JSON value, different bytes
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	reserialized, err := json.MarshalIndent(decoded, "", "  ")
	assert.NoError(t, err)
	assert.NotEqual(t, payload, reserialized)

	_, verifyErr := VerifyEvent(reserialized, header, testWebhookSecret)

	var sigErr *SignatureError
	assert.ErrorAs(t, verifyErr, &sigErr)
}

func TestVerifyEvent_WrongSecret(t *testing.T) {
	payload := eventPayload("payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)
	header := signPayload(payload, "whsec_other_secret", time.Now())

	_, err := VerifyEvent(payload, header, testWebhookSecret)

	var sigErr *SignatureError
	assert.ErrorAs(t, err, &sigErr)
}

func webhookTestRouter() (*gin.Engine, *Handler) {
	cfg := &config.Config{Currency: "eur", StripeWebhookSecret: testWebhookSecret}
	handler := NewHandler(cfg, &stubGateway{})
	r := testutils.SetupTestRouter()
	r.POST("/payments/webhook", handler.Webhook)
	return r, handler
}

func TestWebhook_PaymentIntentSucceededRecordsDonation(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "donations" WHERE stripe_event_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donations" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r, _ := webhookTestRouter()

	payload := eventPayload("payment_intent.succeeded",
		`{"id":"pi_1","object":"payment_intent","amount":5000,"currency":"eur","receipt_email":"a@b.com"}`)
	req, _ := http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret, time.Now()))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["received"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_InvalidSignatureRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r, _ := webhookTestRouter()

	payload := eventPayload("payment_intent.succeeded",
		`{"id":"pi_1","object":"payment_intent","amount":5000,"currency":"eur"}`)
	req, _ := http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	// 400 so Stripe redelivers; nothing was dispatched
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_InvoicePaymentFailedStillAcknowledged(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r, _ := webhookTestRouter()

	payload := eventPayload("invoice.payment_failed", `{"id":"in_1","object":"invoice"}`)
	req, _ := http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret, time.Now()))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	// no ledger write for a failed payment
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_UnknownEventTypeAcknowledged(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r, _ := webhookTestRouter()

	payload := eventPayload("charge.dispute.created", `{"id":"dp_1","object":"dispute"}`)
	req, _ := http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret, time.Now()))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
