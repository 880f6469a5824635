package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostnhome/config"
	"hostnhome/cron"
	"hostnhome/database"
	"hostnhome/database/repository"
	"hostnhome/handlers"
	"hostnhome/middleware"
	"hostnhome/routes"
	"hostnhome/services/booking"
	"hostnhome/services/quotation"
	"hostnhome/services/resort"
	"hostnhome/services/user"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	sessionCache := utils.GetSessionCacheClient()

	// repositories.
	var (
		quotationRepo repository.QuotationRepository
		resortRepo    repository.ResortRepository
	)
	if config.UsePostgres() {
		database.InitPostgres()
		quotationRepo = repository.NewPostgresQuotationRepo(database.PgPool)
		resortRepo = repository.NewPostgresResortRepo(database.PgPool)
	} else {
		quotationRepo = repository.NewMongoQuotationRepo()
		resortRepo = repository.NewMongoResortRepo()
	}
	bookingRepo := repository.NewMongoBookingRepo()
	userRepo := repository.NewMongoUserRepository()

	// services.
	userService := user.NewUserService(userRepo, config.AppConfig.TokenTTL)
	resortService := resort.NewResortService(resortRepo)
	quotationService := quotation.NewQuotationService(quotationRepo)
	wizardService := quotation.NewWizardSessionService(
		quotation.NewRedisSessionStore(sessionCache),
		resortService,
		quotationService,
		config.AppConfig.WizardSessionTTL,
	)
	bookingService := booking.NewBookingService(bookingRepo, quotationService)

	expiryWorker := cron.InitExpiryWorker(quotationService)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.HealthTargets{
		Redis:    []*redis.Client{sessionCache},
		Mongo:    database.MongoClient,
		Postgres: database.PgPool,
	})

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Users:      userService,
		Wizard:     wizardService,
		Quotations: quotationService,
		Bookings:   bookingService,
		Resorts:    resortService,
	})

	// Register routes with the assembled handler bundle.
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

	expiryWorker.Shutdown()
	if database.PgPool != nil {
		database.PgPool.Close()
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
