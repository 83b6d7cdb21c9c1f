package handlers

import (
	"net/http"

	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/seeker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SeekerHandler serves the seeker account and favorites endpoints.
type SeekerHandler struct {
	Svc seeker.SeekerService
}

// NewSeekerHandler creates a new SeekerHandler instance.
func NewSeekerHandler(svc seeker.SeekerService) *SeekerHandler {
	return &SeekerHandler{Svc: svc}
}

// Register creates a seeker account for the authenticated identity.
func (h *SeekerHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var req models.Seeker
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	viewer := middleware.ViewerFrom(c)
	req.ID = viewer.ID
	req.Email = viewer.Email

	created, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to register seeker", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get returns the authenticated seeker's account.
func (h *SeekerHandler) Get(c *gin.Context) {
	s, err := h.Svc.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "seeker not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Update applies a partial account edit.
func (h *SeekerHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	var patch seeker.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	updated, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.AccountID(c), patch)
	if err != nil {
		logger.Error("Failed to update seeker profile", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetRole records the onboarding role choice.
func (h *SeekerHandler) SetRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetRole(c.Request.Context(), middleware.AccountID(c), req.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// AddFavorite bookmarks an advisor for the authenticated seeker.
func (h *SeekerHandler) AddFavorite(c *gin.Context) {
	if err := h.Svc.AddFavorite(c.Request.Context(), middleware.AccountID(c), c.Param("advisorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite added"})
}

// RemoveFavorite removes a bookmarked advisor.
func (h *SeekerHandler) RemoveFavorite(c *gin.Context) {
	if err := h.Svc.RemoveFavorite(c.Request.Context(), middleware.AccountID(c), c.Param("advisorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

// ListBookings returns the seeker's booking history, newest first.
func (h *SeekerHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
