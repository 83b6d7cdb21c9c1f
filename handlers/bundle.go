// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Advisor endpoints.
	RegisterAdvisorHandler     gin.HandlerFunc
	GetAdvisorHandler          gin.HandlerFunc
	UpdateAdvisorHandler       gin.HandlerFunc
	DeleteAdvisorHandler       gin.HandlerFunc
	SetAvailabilityHandler     gin.HandlerFunc
	GetAvailabilityHandler     gin.HandlerFunc
	SetPricingHandler          gin.HandlerFunc
	ListSlotsHandler           gin.HandlerFunc
	ExploreHandler             gin.HandlerFunc
	ListAdvisorBookingsHandler gin.HandlerFunc

	// Seeker endpoints.
	RegisterSeekerHandler     gin.HandlerFunc
	GetSeekerHandler          gin.HandlerFunc
	UpdateSeekerHandler       gin.HandlerFunc
	SetRoleHandler            gin.HandlerFunc
	AddFavoriteHandler        gin.HandlerFunc
	RemoveFavoriteHandler     gin.HandlerFunc
	ListSeekerBookingsHandler gin.HandlerFunc

	// Booking session endpoints.
	InitiateSessionHandler gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	SelectSlotHandler      gin.HandlerFunc
	SubmitDetailsHandler   gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc

	// Storage endpoints.
	UploadPhotoHandler gin.HandlerFunc
}
