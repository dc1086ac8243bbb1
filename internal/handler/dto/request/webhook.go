package request

import "github.com/google/uuid"

// Payment provider event types accepted on the webhook endpoint.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventPaymentFailed     = "payment.failed"
	EventChargeRefunded    = "charge.refunded"
)

// PaymentWebhookRequest is the provider event envelope. Signature
// verification happens upstream at the gateway; the body is trusted here.
type PaymentWebhookRequest struct {
	EventType     string    `json:"event_type" binding:"required"`
	OrderID       uuid.UUID `json:"order_id" binding:"required"`
	TransactionID string    `json:"transaction_id"`
}
