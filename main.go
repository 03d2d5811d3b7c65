package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tamiltaxi/config"
	"tamiltaxi/database"
	bookingRepo "tamiltaxi/database/repository/booking"
	"tamiltaxi/handlers"
	"tamiltaxi/middleware"
	"tamiltaxi/routes"
	"tamiltaxi/services/booking"
	"tamiltaxi/services/geocode"
	"tamiltaxi/services/notification"
	"tamiltaxi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetRateLimitClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(utils.GetRateLimitClient()))

	// Repositories.
	bookingRepository := bookingRepo.NewMongoBookingRepo()

	// Services.
	notifier := notification.NewTelegramNotifier(
		config.AppConfig.TelegramBotToken,
		config.AppConfig.TelegramChatID,
		logger,
	)
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepository,
		Notifier: notifier,
		Logger:   logger,
	}
	geocodeClient := geocode.NewClient(
		config.AppConfig.PhotonURL,
		config.AppConfig.NominatimURL,
		config.AppConfig.GeocodeBBox,
		config.AppConfig.GeocodeViewbox,
		config.AppConfig.GeocodeCountry,
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:  bookingHandler.CreateBooking,
		ListBookings:   bookingHandler.ListBookings,
		GeocodeSearch:  geocodeHandler.Search,
		GeocodeReverse: geocodeHandler.Reverse,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
