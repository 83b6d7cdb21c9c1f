// File: knowly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YCK-art/knowly/config"
	"github.com/YCK-art/knowly/cron"
	"github.com/YCK-art/knowly/database"
	advisorRepoPkg "github.com/YCK-art/knowly/database/repository/advisor"
	bookingRepoPkg "github.com/YCK-art/knowly/database/repository/booking"
	seekerRepoPkg "github.com/YCK-art/knowly/database/repository/seeker"
	"github.com/YCK-art/knowly/handlers"
	"github.com/YCK-art/knowly/middleware"
	"github.com/YCK-art/knowly/routes"
	"github.com/YCK-art/knowly/services/advisor"
	"github.com/YCK-art/knowly/services/booking"
	"github.com/YCK-art/knowly/services/notification"
	"github.com/YCK-art/knowly/services/seeker"
	"github.com/YCK-art/knowly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	advisorRepo := advisorRepoPkg.NewMongoAdvisorRepo()
	seekerRepo := seekerRepoPkg.NewMongoSeekerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	advisorService := &advisor.DefaultAdvisorService{
		Repo:     advisorRepo,
		Bookings: bookingRepo,
		Logger:   logger,
	}
	seekerService := &seeker.DefaultSeekerService{
		Repo:     seekerRepo,
		Bookings: bookingRepo,
		Logger:   logger,
	}

	notificationService, err := notification.NewDefaultNotificationService(seekerRepo, advisorRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	meetingIssuer, err := booking.NewCalendarMeetingIssuer(
		context.Background(),
		config.AppConfig.FirebaseCredentials,
		config.AppConfig.CalendarID,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize meeting issuer: %v", err)
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	bookingService := &booking.DefaultSessionService{
		Advisors:      advisorRepo,
		Seekers:       seekerRepo,
		Bookings:      bookingRepo,
		Payments:      booking.NewStripeProcessor(logger),
		Meetings:      meetingIssuer,
		Notifications: notificationService,
		Cache:         utils.GetBookingCacheClient(),
		Tasks:         taskClient,
		Logger:        logger,
		Currency:      config.AppConfig.Currency,
		WindowDays:    config.AppConfig.BookingWindowDays,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	advisorHandler := handlers.NewAdvisorHandler(advisorService)
	seekerHandler := handlers.NewSeekerHandler(seekerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Advisor endpoints.
		RegisterAdvisorHandler:     advisorHandler.Register,
		GetAdvisorHandler:          advisorHandler.Get,
		UpdateAdvisorHandler:       advisorHandler.Update,
		DeleteAdvisorHandler:       advisorHandler.Delete,
		SetAvailabilityHandler:     advisorHandler.SetAvailability,
		GetAvailabilityHandler:     advisorHandler.GetAvailability,
		SetPricingHandler:          advisorHandler.SetPricing,
		ListSlotsHandler:           advisorHandler.ListSlots,
		ExploreHandler:             advisorHandler.Explore,
		ListAdvisorBookingsHandler: advisorHandler.ListBookings,

		// Seeker endpoints.
		RegisterSeekerHandler:     seekerHandler.Register,
		GetSeekerHandler:          seekerHandler.Get,
		UpdateSeekerHandler:       seekerHandler.Update,
		SetRoleHandler:            seekerHandler.SetRole,
		AddFavoriteHandler:        seekerHandler.AddFavorite,
		RemoveFavoriteHandler:     seekerHandler.RemoveFavorite,
		ListSeekerBookingsHandler: seekerHandler.ListBookings,

		// Booking session endpoints.
		InitiateSessionHandler: bookingHandler.InitiateSession,
		GetSessionHandler:      bookingHandler.GetSession,
		SelectSlotHandler:      bookingHandler.SelectSlot,
		SubmitDetailsHandler:   bookingHandler.SubmitDetails,
		ConfirmBookingHandler:  bookingHandler.Confirm,
		CancelSessionHandler:   bookingHandler.CancelSession,

		// Storage endpoints.
		UploadPhotoHandler: storageHandler.UploadPhoto,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency checks backing the health endpoint.
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":   utils.GetCacheClient(),
		"booking": utils.GetBookingCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
