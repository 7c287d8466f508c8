package handlers

import (
	"errors"
	"net/http"

	"pawspa/models"
	"pawspa/services/booking"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service  booking.WizardSessionService
	Payments booking.PaymentService
	Logger   *zap.Logger
}

func NewBookingHandler(service booking.WizardSessionService, payments booking.PaymentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Service:  service,
		Payments: payments,
		Logger:   logger,
	}
}

// StartSession creates a new wizard session for the authenticated customer.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		DeviceID   string `json:"deviceId"`
		DeviceName string `json:"deviceName"`
		FCMToken   string `json:"fcmToken"`
	}
	// Body is optional; device metadata only enriches the session.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Service.StartSession(c.GetString("userID"), input.DeviceID, input.DeviceName, input.FCMToken)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
	})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
	})
}

// UpdateSession applies a partial state update. A rejected update answers
// 200 with the unchanged state and the field errors, mirroring the state
// manager's non-fatal contract.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var update models.StateUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, result, err := h.Service.ApplyUpdate(c.Param("sessionID"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
		Errors:    result.Errors,
	})
}

// NextStep validates the current step and advances the wizard.
func (h *BookingHandler) NextStep(c *gin.Context) {
	session, validation, err := h.Service.AdvanceStep(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
		Errors:    validation.Errors,
	})
}

// PreviousStep moves the wizard one step back.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	session, err := h.Service.RegressStep(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
	})
}

// Quote returns the price breakdown for the current state.
func (h *BookingHandler) Quote(c *gin.Context) {
	quote, err := h.Service.Quote(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: c.Param("sessionID"),
		Quote:     quote,
	})
}

// CreateBookingFeeIntent creates a Stripe payment intent for the booking
// fee deposit.
func (h *BookingHandler) CreateBookingFeeIntent(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Amount <= 0 {
		input.Amount = utils.DefaultBookingFee
	}

	intent, err := h.Payments.CreateBookingFeeIntent(c.Request.Context(), c.Param("sessionID"), c.GetString("userID"), input.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// RecordBookingFee marks the booking fee as paid on the session.
func (h *BookingHandler) RecordBookingFee(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Amount <= 0 {
		input.Amount = utils.DefaultBookingFee
	}

	session, err := h.Service.RecordBookingFee(c.Param("sessionID"), input.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{
		SessionID: session.SessionID,
		State:     &session.State,
	})
}

// ConfirmBooking finalizes the wizard into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmed, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Booking: confirmed,
	})
}

// ListBookings returns the authenticated customer's confirmed bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels one of the customer's confirmed bookings.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Service.CancelBooking(c.Request.Context(), c.GetString("userID"), c.Param("bookingID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// CancelSession discards a wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var sessionErr *booking.SessionError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": validationErr.Errors})
	case errors.As(err, &sessionErr):
		c.JSON(http.StatusNotFound, gin.H{"error": sessionErr.Message})
	default:
		h.Logger.Error("booking handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
