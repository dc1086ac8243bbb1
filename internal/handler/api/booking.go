package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/middleware"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a provisional booking with pricing frozen at creation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get booking
// @Description Get booking by ID; guests see only their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, actor.UserID, actor.Role)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum items to return"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), actor.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		resp, err := resdto.FromBookingListItem(item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		response = append(response, resp)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update booking
// @Description Partially update a booking. Owners may reshape provisional
// @Description bookings; a status patch of CANCELLED cancels. Other status
// @Description transitions are staff-only and move seats through the ledger.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if req.IsCancelOnly() {
		err = h.bookingCommands.Cancel(c.Request.Context(), actor, id)
	} else {
		err = h.bookingCommands.Update(c.Request.Context(), actor, id, req.ToInput())
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	view, err := h.bookingQueries.GetByIDSystem(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete booking
// @Description Delete a booking. Deleting one that holds seats is staff-only
// @Description and releases the seats.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), actor, id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Preview pricing
// @Description Quote a price without creating anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewPricingRequest true "Pricing input"
// @Success 200 {object} pricing.Breakdown
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/preview [post]
func (h *BookingHandler) PreviewPricing(c *gin.Context) {
	var req reqdto.PreviewPricingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	breakdown, err := h.bookingCommands.Preview(c.Request.Context(), req.BaseAmount, req.GetCouponCode())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// @Summary Checkout
// @Description Group provisional bookings into one order with a pending payment
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Bookings to check out"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Checkout(c.Request.Context(), actor, commands.CheckoutInput{
		BookingIDs:    req.BookingIDs,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func requireActor(c *gin.Context) (commands.Actor, bool) {
	userID, okID := middleware.GetUserID(c)
	role, okRole := middleware.GetUserRole(c)
	if !okID || !okRole {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.Actor{}, false
	}
	return commands.Actor{UserID: userID, Role: role}, true
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, errs.ErrRoomNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is not available",
		})
	case errors.Is(err, errs.ErrRoomFull):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is fully booked",
		})
	case errors.Is(err, errs.ErrInsufficientSeats):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not enough seats available",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid booking status transition",
		})
	case errors.Is(err, errs.ErrCheckOutRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out date required for short-term booking",
		})
	case errors.Is(err, errs.ErrInvalidStayPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay period",
		})
	case errors.Is(err, errs.ErrNothingToCheckout):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No bookings to check out",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
