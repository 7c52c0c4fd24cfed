package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/audit"
	"github.com/vcscsvcscs/guttracker/internal/azure"
	"github.com/vcscsvcscs/guttracker/internal/cache"
	"github.com/vcscsvcscs/guttracker/internal/config"
	"github.com/vcscsvcscs/guttracker/internal/handler"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/internal/logging"
	"github.com/vcscsvcscs/guttracker/internal/middleware"
	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/pdf"
	"github.com/vcscsvcscs/guttracker/internal/repository"
	"github.com/vcscsvcscs/guttracker/internal/security"
	"github.com/vcscsvcscs/guttracker/internal/service"
	"github.com/vcscsvcscs/guttracker/pkg/api"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger, err := logging.New(cfg.Server.Environment, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("timezone", cfg.Analytics.Timezone),
	)

	ctx := context.Background()

	pool, err := repository.Connect(ctx, repository.PoolConfig{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("Successfully connected to database")

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool, logger); err != nil {
			logger.Fatal("Failed to apply database schema", zap.Error(err))
		}
	}

	key, err := cfg.Security.Key()
	if err != nil {
		logger.Fatal("Invalid encryption key", zap.Error(err))
	}
	cipher, err := security.NewEncryptor(key)
	if err != nil {
		logger.Fatal("Failed to initialize note encryption", zap.Error(err))
	}

	checks := map[string]handler.HealthCheck{
		"database": pool.Ping,
	}

	// Redis is optional; without it every stats request is computed from the database
	var statsCache service.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		statsCache = cache.NewStatsCache(rdb, cfg.Redis.StatsTTL, logger)
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
		logger.Info("Stats cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	blobClient, err := azure.NewBlobStorageClient(
		cfg.Azure.Storage.AccountName,
		cfg.Azure.Storage.AccountKey,
		cfg.Azure.Storage.BlobEndpoint,
		cfg.Azure.Storage.ReportContainer,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to initialize Azure Blob Storage client", zap.Error(err))
	}
	if err := blobClient.EnsureContainer(ctx); err != nil {
		logger.Fatal("Failed to prepare report container", zap.Error(err))
	}

	catalog, err := locale.NewCatalog()
	if err != nil {
		logger.Fatal("Failed to load message catalog", zap.Error(err))
	}

	loc, err := cfg.Analytics.Location()
	if err != nil {
		logger.Fatal("Invalid analytics timezone", zap.Error(err))
	}
	engine := analytics.NewEngine(loc)
	auditLogger := audit.NewLogger(pool, logger)

	// Initialize repositories
	bowelRepo := repository.NewBowelRepository(pool, cipher, logger)
	symptomRepo := repository.NewSymptomRepository(pool, cipher, logger)
	medicationRepo := repository.NewMedicationRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)

	// Initialize services
	recordService := service.NewRecordService(bowelRepo, symptomRepo, statsCache, auditLogger, logger)
	medicationService := service.NewMedicationService(medicationRepo, statsCache, auditLogger, logger)
	statsService := service.NewStatsService(bowelRepo, symptomRepo, medicationRepo, statsCache, engine, logger)
	reportService := service.NewReportService(
		statsService,
		medicationRepo,
		reportRepo,
		blobClient,
		pdf.NewPDFGenerator(logger),
		catalog,
		auditLogger,
		logger,
	)
	notificationService := service.NewNotificationService(statsService, medicationRepo, notify.NewComposer(catalog), logger)

	apiHandler := &handler.APIHandler{
		Records:       handler.NewRecordHandler(recordService, loc, logger),
		Medications:   handler.NewMedicationHandler(medicationService, loc, logger),
		Stats:         handler.NewStatsHandler(statsService, loc, cfg.Analytics.DefaultPeriodDays, logger),
		Reports:       handler.NewReportHandler(reportService, cfg.Analytics.DefaultPeriodDays, logger),
		Notifications: handler.NewNotificationHandler(notificationService, logger),
		Health:        handler.NewHealthHandler(checks, logger),
	}

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggingMiddleware(logger))
	r.Use(middleware.ErrorLoggingMiddleware(logger))
	r.Use(middleware.SlowRequestMiddleware(logger, 1*time.Second))

	api.RegisterHandlers(r, apiHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
