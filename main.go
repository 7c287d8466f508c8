// File: pawspa/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawspa/config"
	"pawspa/database"
	bookingRepo "pawspa/database/repository/booking"
	"pawspa/handlers"
	"pawspa/routes"
	"pawspa/services/booking"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitRateCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	repo := bookingRepo.NewMongoBookingRepo()

	// services.
	notifier := &booking.FCMNotificationService{Logger: logger}
	wizardService := &booking.DefaultWizardSessionService{
		Cache:    utils.GetSessionCacheClient(),
		Repo:     repo,
		Notifier: notifier,
		Logger:   logger,
		Relaxed:  config.AppConfig.RelaxedValidation,
	}
	paymentService := &booking.StripePaymentService{Logger: logger}

	bookingHandler := handlers.NewBookingHandler(wizardService, paymentService, logger)

	routes.RegisterRoutes(router, bookingHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.SessionCacheClient, utils.RateCacheClient},
		database.MongoClient,
	)

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
