package handlers

import (
	"net/http"
	"strconv"

	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/advisor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdvisorHandler serves the advisor profile and scheduling endpoints.
type AdvisorHandler struct {
	Svc advisor.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler instance.
func NewAdvisorHandler(svc advisor.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{Svc: svc}
}

// Register creates an advisor profile for the authenticated account.
func (h *AdvisorHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var req models.Advisor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	viewer := middleware.ViewerFrom(c)
	req.ID = viewer.ID
	req.Email = viewer.Email

	created, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to register advisor", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get returns a public advisor profile.
func (h *AdvisorHandler) Get(c *gin.Context) {
	adv, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "advisor not found"})
		return
	}
	c.JSON(http.StatusOK, adv)
}

// Update applies a partial profile edit for the authenticated advisor.
func (h *AdvisorHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	var patch advisor.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	updated, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.AccountID(c), patch)
	if err != nil {
		logger.Error("Failed to update advisor profile", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the authenticated advisor's profile.
func (h *AdvisorHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.AccountID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "advisor deleted"})
}

// SetAvailability replaces the advisor's weekly schedule.
func (h *AdvisorHandler) SetAvailability(c *gin.Context) {
	logger := getLogger(c)

	var av models.Availability
	if err := c.ShouldBindJSON(&av); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetAvailability(c.Request.Context(), middleware.AccountID(c), av); err != nil {
		logger.Error("Failed to set availability", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// GetAvailability returns an advisor's weekly schedule as stored.
func (h *AdvisorHandler) GetAvailability(c *gin.Context) {
	av, err := h.Svc.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "advisor not found"})
		return
	}
	c.JSON(http.StatusOK, av)
}

// SetPricing replaces the advisor's rate and offered durations.
func (h *AdvisorHandler) SetPricing(c *gin.Context) {
	logger := getLogger(c)

	var pricing models.Pricing
	if err := c.ShouldBindJSON(&pricing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetPricing(c.Request.Context(), middleware.AccountID(c), pricing); err != nil {
		logger.Error("Failed to set pricing", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pricing updated"})
}

// ListSlots returns an advisor's open slots for one duration, rendered in
// the viewer's timezone.
func (h *AdvisorHandler) ListSlots(c *gin.Context) {
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a number of minutes"})
		return
	}

	query := advisor.SlotQuery{
		AdvisorID:       c.Param("id"),
		DurationMinutes: duration,
		ViewerZone:      c.Query("tz"),
	}
	if days := c.Query("days"); days != "" {
		if query.WindowDays, err = strconv.Atoi(days); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number"})
			return
		}
	}

	slots, err := h.Svc.ListSlots(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// Explore searches advisor profiles by query text, category and price band.
func (h *AdvisorHandler) Explore(c *gin.Context) {
	var filter models.AdvisorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter: " + err.Error()})
		return
	}

	advisors, err := h.Svc.Explore(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Advisor search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advisors": advisors, "count": len(advisors)})
}

// ListBookings returns the authenticated advisor's upcoming sessions.
func (h *AdvisorHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
