// File: consultly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"consultly/config"
	"consultly/cron"
	"consultly/database"
	availabilityRepo "consultly/database/repository/availability"
	bookingRepo "consultly/database/repository/booking"
	professionalRepo "consultly/database/repository/professional"
	"consultly/handlers"
	"consultly/middleware"
	"consultly/routes"
	"consultly/services/notification"
	"consultly/services/payment"
	"consultly/services/professional"
	"consultly/services/scheduling"
	"consultly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	professionals := professionalRepo.NewMongoProfessionalRepo()

	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := availability.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}

	// notification pipeline: enqueue on the request path, deliver in the
	// background worker.
	dispatcher := notification.NewAsynqDispatcher()
	sender := &notification.FCMSender{Professionals: professionals}
	notification.InitDeliveryWorker(sender)

	var verifier payment.Verifier = payment.NoopVerifier{}
	if config.AppConfig.VerifyPaymentRefs {
		verifier = payment.StripeVerifier{}
	}

	// services.
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Repo:         bookings,
		Availability: availability,
		Calendar:     scheduling.NewCalendarFromConfig(),
		Checker:      &scheduling.AvailabilityChecker{Bookings: bookings},
		Payments:     verifier,
		Notifier:     dispatcher,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.CalendarCacheTTL) * time.Second,
		HorizonDays:  config.AppConfig.BookingHorizonDays,
	}

	availabilityService := &professional.DefaultAvailabilityService{
		Repo:      availability,
		Profiles:  professionals,
		Scheduler: schedulingEngine,
	}

	cron.StartReminderScanner(bookings, dispatcher)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(schedulingEngine, logger),
		Calendar:     handlers.NewCalendarHandler(schedulingEngine, schedulingEngine.Calendar.Location, logger),
		Availability: handlers.NewAvailabilityHandler(availabilityService, logger),
		Admin:        handlers.NewAdminHandler(schedulingEngine, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	if err := dispatcher.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification dispatcher: %v", err)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}
