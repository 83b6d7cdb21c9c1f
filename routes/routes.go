package routes

import (
	"net/http"
	"time"

	"github.com/YCK-art/knowly/handlers"
	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdvisorRoutes registers advisor profile and scheduling endpoints.
func RegisterAdvisorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advisors")
	{
		// Public endpoints: browsing profiles and open slots needs no account.
		api.GET("/:id", hb.GetAdvisorHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.GET("/:id/slots", hb.ListSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("/register", hb.RegisterAdvisorHandler)
		protected.PATCH("/me", hb.UpdateAdvisorHandler)
		protected.DELETE("/me", hb.DeleteAdvisorHandler)
		protected.PUT("/me/availability", hb.SetAvailabilityHandler)
		protected.PUT("/me/pricing", hb.SetPricingHandler)
		protected.GET("/me/bookings", hb.ListAdvisorBookingsHandler)
	}
}

// RegisterSeekerRoutes registers seeker account endpoints.
func RegisterSeekerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/seekers")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/register", hb.RegisterSeekerHandler)
		api.GET("/me", hb.GetSeekerHandler)
		api.PATCH("/me", hb.UpdateSeekerHandler)
		api.PUT("/me/role", hb.SetRoleHandler)
		api.POST("/me/favorites/:advisorID", hb.AddFavoriteHandler)
		api.DELETE("/me/favorites/:advisorID", hb.RemoveFavoriteHandler)
		api.GET("/me/bookings", hb.ListSeekerBookingsHandler)
	}
}

// RegisterExploreRoutes registers the public advisor search endpoint.
func RegisterExploreRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/explore", hb.ExploreHandler)
}

// RegisterBookingRoutes sets up the checkout workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.AuthMiddleware())
		bookingGroup.POST("/session", hb.InitiateSessionHandler)
		bookingGroup.GET("/session/:sessionID", hb.GetSessionHandler)
		bookingGroup.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
		bookingGroup.PUT("/session/:sessionID/details", hb.SubmitDetailsHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterStorageRoutes registers profile media endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/photo", hb.UploadPhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterExploreRoutes(r, hb)
	RegisterAdvisorRoutes(r, hb)
	RegisterSeekerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
