package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servineo/config"
	"servineo/cron"
	"servineo/database"
	installationRepo "servineo/database/repository/installation"
	"servineo/handlers"
	"servineo/metrics"
	"servineo/middleware"
	"servineo/routes"
	"servineo/services/availability"
	"servineo/services/backend"
	"servineo/services/booking"
	"servineo/services/dashboard"
	"servineo/services/events"
	"servineo/services/help"
	"servineo/services/socialAuth"
	"servineo/services/tutorial"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitSessionCache()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetSessionCacheClient(), database.MongoClient, 30*time.Second)

	loc := config.Location()
	flowMetrics := metrics.NewFlowMetrics(prometheus.DefaultRegisterer)

	// backend + services.
	api := backend.NewClient(config.AppConfig.APIBaseURL, logger)
	fetcher := availability.NewFetcher(api, logger, flowMetrics)

	bookingService := &booking.DefaultBookingSessionService{
		Store:      booking.NewRedisSessionStore(utils.GetSessionCacheClient(), config.AppConfig.BookingSessionTTL),
		Fetcher:    fetcher,
		Now:        func() time.Time { return time.Now().In(loc) },
		TargetPath: config.AppConfig.RequestTargetPath,
		Logger:     logger,
		Metrics:    flowMetrics,
	}

	jobs := dashboard.NewCachedJobSource(api, utils.GetSessionCacheClient(), config.AppConfig.DashboardCacheTTL, logger)

	bus := events.NewBus()
	seen := installationRepo.NewMongoInstallationRepo(database.Database(), logger)
	tutorialManager := tutorial.NewManager(bus, seen, logger, flowMetrics)
	if config.AppConfig.TutorialStartDelay > 0 {
		tutorialManager.StartDelay = config.AppConfig.TutorialStartDelay
	}
	if idle := config.AppConfig.TutorialVisitIdle; idle > 0 {
		cron.StartVisitReaper(monitorCtx, tutorialManager, time.Minute, idle, logger)
	}

	guide, err := help.Default()
	if err != nil {
		logger.Fatal("main: invalid help content", zap.Error(err))
	}
	if config.AppConfig.GoogleClientID == "" {
		logger.Warn("main: GOOGLE_CLIENT_ID is empty, Google sign-in will be rejected")
	}

	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService),
		Dashboard: &handlers.DashboardHandler{Jobs: jobs, Metrics: flowMetrics, Location: loc},
		Tutorial:  &handlers.TutorialHandler{Mgr: tutorialManager},
		Help:      &handlers.HelpHandler{Guide: guide},
		Auth:      handlers.NewAuthHandler(config.AppConfig.GoogleClientID, config.AppConfig.GoogleRedirectURI, socialAuth.NewGoogleVerifier()),
		Fixers:    handlers.NewFixerHandler(api),
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin).Middleware())

	routes.RegisterRoutes(router, handlerBundle)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
