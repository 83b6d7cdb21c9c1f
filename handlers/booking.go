package handlers

import (
	"net/http"

	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the checkout workflow over HTTP. Each endpoint
// operates on a session identified by the path parameter.
type BookingHandler struct {
	Svc booking.SessionService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.SessionService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// InitiateSession opens a checkout session against one advisor.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req struct {
		AdvisorID string `json:"advisorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sess, err := h.Svc.InitiateSession(c.Request.Context(), middleware.AccountID(c), req.AdvisorID)
	if err != nil {
		getLogger(c).Error("Failed to initiate booking session", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sess, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SelectSlot attaches the picked slot and moves the session forward.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var slot models.Slot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sess, err := h.Svc.SelectSlot(c.Request.Context(), c.Param("sessionID"), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SubmitDetails records the session topic and freezes the price.
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	var details booking.SessionDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sess, err := h.Svc.SubmitDetails(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Confirm charges the card and finalizes the booking.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req struct {
		PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	booked, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"), req.PaymentMethodID)
	if err != nil {
		getLogger(c).Warn("Booking confirmation failed", zap.String("sessionID", c.Param("sessionID")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booked)
}

// CancelSession abandons the checkout.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}
