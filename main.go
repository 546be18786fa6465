package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/analytics"
	"github.com/junaidrashid-git/menu-api/auth"
	"github.com/junaidrashid-git/menu-api/config"
	"github.com/junaidrashid-git/menu-api/logging"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/junaidrashid-git/menu-api/routes"
	"github.com/junaidrashid-git/menu-api/storefront"
	"github.com/junaidrashid-git/menu-api/whatsapp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("✅ Starting application...", zap.String("environment", cfg.Environment))

	// Init DB
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("❌ DB connection failed", zap.Error(err))
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Store{},
		&models.Category{},
		&models.CatalogItem{},
		&models.AnalyticsEvent{},
	); err != nil {
		logger.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Firebase is optional locally; owner sign-in answers 503 without it.
	var verifier auth.TokenVerifier
	if client, err := auth.InitFirebase(ctx, cfg.FirebaseCredentialsJSON, cfg.FirebaseProjectID); err != nil {
		if cfg.IsProduction() {
			logger.Fatal("❌ Firebase init failed", zap.Error(err))
		}
		logger.Warn("Firebase not configured, owner sign-in disabled", zap.Error(err))
	} else {
		verifier = client
	}

	// Analytics: events are stored locally unless a remote collector is configured.
	feed := analytics.NewFeed()
	storeSink := &analytics.StoreSink{DB: db, Feed: feed}
	var trackerSink analytics.Sink = storeSink
	if cfg.AnalyticsEndpoint != "" {
		trackerSink = analytics.NewHTTPSink(cfg.AnalyticsEndpoint, cfg.APIKey)
		logger.Info("analytics forwarded to remote collector", zap.String("endpoint", cfg.AnalyticsEndpoint))
	}
	tracking := analytics.NewClient(trackerSink, logger)

	sessions := storefront.NewSessions(cfg.SessionCapacity, cfg.SessionTTL, tracking)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessions.Len()})
	})

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		Logger:    logger,
		Sessions:  sessions,
		WhatsApp:  whatsapp.NewDispatcher(cfg.WhatsAppCountryCode),
		Location:  cfg.Location(),
		Ingest:    storeSink,
		Feed:      feed,
		JWTSecret: cfg.JWTSecret,
		APIKey:    cfg.APIKey,
		OwnerLogin: auth.OwnerLogin{
			Verifier:        verifier,
			ProjectID:       cfg.FirebaseProjectID,
			SuperAdminEmail: cfg.SuperAdminEmail,
			JWTSecret:       cfg.JWTSecret,
			Logger:          logger,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server running", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// Let in-flight analytics sends finish before the DB goes away.
	tracking.Wait()
	logger.Info("👋 Bye")
}
