package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lustrio/config"
	"lustrio/database"
	bookingRepo "lustrio/database/repository/booking"
	feedbackRepo "lustrio/database/repository/feedback"
	hotelRepo "lustrio/database/repository/hotel"
	userRepo "lustrio/database/repository/user"
	"lustrio/handlers"
	"lustrio/middleware"
	"lustrio/routes"
	"lustrio/services/booking"
	"lustrio/services/feedback"
	"lustrio/services/hotel"
	"lustrio/services/identity"
	"lustrio/services/payment"
	"lustrio/services/storage"
	"lustrio/services/user"
	"lustrio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store must be reachable before any route is registered.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := database.Connect(startCtx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(startCtx, db); err != nil {
		logger.Fatal("main: failed to create indexes", zap.Error(err))
	}
	cancelStart()
	logger.Info("connected to MongoDB", zap.String("database", cfg.DatabaseName))

	store := database.NewMongoStore(db)

	// External services fall back to disabled implementations so the
	// remaining endpoints keep working without credentials.
	var verifier identity.Verifier = identity.Disabled{}
	if cfg.FirebaseEnabled() {
		fv, err := identity.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentialsFile, cfg.FirebaseServiceAccount)
		if err != nil {
			logger.Fatal("main: failed to initialize firebase auth", zap.Error(err))
		}
		verifier = fv
	} else {
		logger.Warn("firebase credentials not set; admin promotion is disabled")
	}

	var issuer payment.Issuer = payment.Disabled{}
	if cfg.StripeEnabled() {
		issuer = payment.NewStripeIssuer(cfg.StripeKey, nil)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set; payments are disabled")
	}

	var mirror storage.ImageMirror
	if cfg.CloudinaryEnabled() {
		cm, err := storage.NewCloudinaryMirror(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary", zap.Error(err))
		}
		mirror = cm
	}

	// services.
	hotelService := hotel.NewHotelService(hotelRepo.NewStoreHotelRepo(store), mirror, logger)
	bookingService := booking.NewBookingService(bookingRepo.NewStoreBookingRepo(store), issuer, cfg.PaymentCurrency, logger)
	feedbackService := &feedback.DefaultFeedbackService{Repo: feedbackRepo.NewStoreFeedbackRepo(store)}
	userService := &user.DefaultUserService{Repo: userRepo.NewStoreUserRepo(store)}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	health := utils.NewHealthMonitor(client, 60*time.Second, logger)
	health.Start(monitorCtx)

	handlerBundle := &handlers.HandlerBundle{
		Hotels:         hotelService,
		Bookings:       bookingService,
		Feedbacks:      feedbackService,
		Users:          userService,
		Verifier:       verifier,
		Health:         health,
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		AllowedOrigins: cfg.Origins(),
	}
	if cfg.MetricsEnabled {
		handlerBundle.Metrics = middleware.NewMetrics()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ListenPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	stopMonitor()

	if err := database.Disconnect(client); err != nil {
		logger.Error("main: failed to disconnect from MongoDB", zap.Error(err))
	}
	logger.Info("main: server stopped gracefully")
}
