//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostel-booking/internal/handler/api"
	"hostel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentCommands struct {
	completedErr error
	failedErr    error
	refundedErr  error

	gotOrderID       uuid.UUID
	gotTransactionID string
	calls            int
}

func (s *stubPaymentCommands) HandleCheckoutCompleted(_ context.Context, orderID uuid.UUID, transactionID string) error {
	s.calls++
	s.gotOrderID = orderID
	s.gotTransactionID = transactionID
	return s.completedErr
}

func (s *stubPaymentCommands) HandlePaymentFailed(_ context.Context, orderID uuid.UUID, transactionID string) error {
	s.calls++
	s.gotOrderID = orderID
	s.gotTransactionID = transactionID
	return s.failedErr
}

func (s *stubPaymentCommands) HandleChargeRefunded(_ context.Context, orderID uuid.UUID) error {
	s.calls++
	s.gotOrderID = orderID
	return s.refundedErr
}

func postWebhook(t *testing.T, stub *stubPaymentCommands, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewWebhookHandler(stub)
	router.POST("/api/webhooks/payment", handler.HandlePaymentEvent)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	orderID := uuid.New()

	t.Run("checkout completed dispatches with transaction id", func(t *testing.T) {
		stub := &stubPaymentCommands{}
		rec := postWebhook(t, stub, map[string]any{
			"event_type":     "checkout.session.completed",
			"order_id":       orderID.String(),
			"transaction_id": "txn_1",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, orderID, stub.gotOrderID)
		assert.Equal(t, "txn_1", stub.gotTransactionID)
	})

	t.Run("unknown event type acknowledged without dispatch", func(t *testing.T) {
		stub := &stubPaymentCommands{}
		rec := postWebhook(t, stub, map[string]any{
			"event_type": "invoice.created",
			"order_id":   orderID.String(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, stub.calls)
		assert.Contains(t, rec.Body.String(), "ignored")
	})

	t.Run("missing order id rejected", func(t *testing.T) {
		stub := &stubPaymentCommands{}
		rec := postWebhook(t, stub, map[string]any{
			"event_type": "payment.failed",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		stub := &stubPaymentCommands{completedErr: errs.ErrOrderNotFound}
		rec := postWebhook(t, stub, map[string]any{
			"event_type": "checkout.session.completed",
			"order_id":   orderID.String(),
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("conflicting final payment maps to 409", func(t *testing.T) {
		stub := &stubPaymentCommands{failedErr: errs.ErrPaymentAlreadyFinal}
		rec := postWebhook(t, stub, map[string]any{
			"event_type": "payment.failed",
			"order_id":   orderID.String(),
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unfulfillable paid order maps to 409", func(t *testing.T) {
		stub := &stubPaymentCommands{completedErr: errs.ErrOrderUnfulfillable}
		rec := postWebhook(t, stub, map[string]any{
			"event_type": "checkout.session.completed",
			"order_id":   orderID.String(),
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "refund")
	})
}
