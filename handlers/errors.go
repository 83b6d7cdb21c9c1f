package handlers

import (
	"errors"
	"net/http"

	"github.com/YCK-art/knowly/services/booking"
	"github.com/YCK-art/knowly/services/schedule"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses and writes the
// standard error body.
func respondError(c *gin.Context, err error) {
	var trErr *booking.TransitionError
	var payErr *booking.PaymentError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &trErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &payErr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":           err.Error(),
			"paymentCaptured": payErr.Captured,
		})
	case errors.Is(err, schedule.ErrInvalidTimezone),
		errors.Is(err, schedule.ErrInvalidDateTime),
		errors.Is(err, schedule.ErrInvalidDuration),
		errors.Is(err, schedule.ErrDurationNotOffered),
		errors.Is(err, schedule.ErrInvalidTimeRange),
		errors.Is(err, schedule.ErrMissingTimezone),
		errors.Is(err, schedule.ErrNoDurationsConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
