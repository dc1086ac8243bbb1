package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewWebhookHandler(paymentCommands commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Payment webhook
// @Description Process a payment provider event. Redelivered events are
// @Description acknowledged without side effects.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Provider event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ctx := c.Request.Context()

	var err error
	switch req.EventType {
	case reqdto.EventCheckoutCompleted:
		err = h.paymentCommands.HandleCheckoutCompleted(ctx, req.OrderID, req.TransactionID)
	case reqdto.EventPaymentFailed:
		err = h.paymentCommands.HandlePaymentFailed(ctx, req.OrderID, req.TransactionID)
	case reqdto.EventChargeRefunded:
		err = h.paymentCommands.HandleChargeRefunded(ctx, req.OrderID)
	default:
		slog.Warn("unknown payment event type ignored",
			"event_type", req.EventType,
			"order_id", req.OrderID.String())
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, errs.ErrPaymentAlreadyFinal):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already finalized with a different outcome",
			})
		case errors.Is(err, errs.ErrOrderNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not pending",
			})
		case errors.Is(err, errs.ErrOrderUnfulfillable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Paid order cannot be fulfilled, refund required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
