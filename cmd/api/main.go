package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/config"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/coordinator"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/geocoding"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/handlers"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/middleware"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-adulto-mayor/docs"
)

// @title           Adulto Mayor API
// @version         1.0
// @description     API de gestión del programa de atención al adulto mayor: padrón de beneficiarios, actividades culturales, rifas y programa de nutrición, con un portal público de consulta.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name auth
// @tag.description Inicio y cierre de sesión del administrador

// @tag.name beneficiaries
// @tag.description Padrón de adultos mayores

// @tag.name activities
// @tag.description Actividades culturales

// @tag.name raffles
// @tag.description Rifas y sorteos

// @tag.name nutrition
// @tag.description Programa de nutrición

// @tag.name public
// @tag.description Portal público de consulta

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	if cfg.StoreDriver == config.StoreDriverMongo {
		if err := config.InitMongoDB(); err != nil {
			logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
		}
	}
	if err := config.InitRedis(); err != nil {
		logging.Logger.Warn("redis unavailable, using in-memory sessions and no geocode cache", zap.Error(err))
	}

	st, err := store.FromConfig(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to open store", zap.Error(err))
	}

	// Sessions
	var registry auth.Registry = auth.NewMemoryRegistry()
	if config.Redis != nil {
		registry = auth.NewRedisRegistry(config.Redis)
	}
	authService, err := auth.NewService(auth.Options{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
		Secret:            cfg.SessionSecret,
		TTL:               cfg.SessionTTL,
	}, registry)
	if err != nil {
		logging.Logger.Fatal("failed to initialize auth", zap.Error(err))
	}

	// Audit trail
	var sink utils.AuditSink = utils.LogAuditSink{Logger: logging.Named("audit")}
	if config.MongoDB != nil {
		sink = utils.MongoAuditSink{Collection: config.MongoDB.Collection(cfg.AuditLogsCollection)}
	}
	auditWorker := utils.NewAuditWorker(sink, cfg.AuditWorkers, cfg.AuditBufferSize)

	// Reverse geocoding
	var geocoder geocoding.ReverseGeocoder = geocoding.NewNominatimClient(cfg.GeocodingURL, cfg.GeocodingUserAgent, cfg.GeocodingTimeout)
	if config.Redis != nil {
		geocoder = geocoding.NewCachedGeocoder(geocoder, config.Redis, cfg.GeocodingCacheTTL)
	}

	manager := coordinator.NewManager(st, authService,
		coordinator.WithAuditor(auditWorker),
		coordinator.WithFeedSize(cfg.NotificationFeedSize),
		coordinator.WithPhoneRegion(cfg.DefaultRegion),
		coordinator.WithGeocoder(geocoder, cfg.GeocodingDebounce),
	)

	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()
	go manager.Run(runCtx, cfg.PublicRefreshInterval)

	checks := map[string]handlers.Check{
		"store": func(ctx context.Context) error {
			_, err := st.Activities().SelectAll(ctx)
			return err
		},
	}
	if config.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return config.Redis.Ping(ctx).Err()
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:   []string{middleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	handlers.New(manager, geocoder, checks).Register(router.Group("/v1"))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("store_driver", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	stopRun()
	manager.Close()
	auditWorker.Stop()
	if err := st.Close(ctx); err != nil {
		logging.Logger.Warn("failed to close store", zap.Error(err))
	}
	config.CloseMongoDB(ctx)
	if config.Redis != nil {
		_ = config.Redis.Close()
	}

	logging.Logger.Info("server exited gracefully")
}
