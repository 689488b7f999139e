package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/upstream"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis (optional)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.Warnf("Failed to connect to Redis, continuing without catalog cache: %+v", err)
		} else {
			app.RedisClient = redisClient
		}
	}

	// Initialize all layers
	server, err := initializeServer(cfg, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Failed to parse log level %q, keeping info: %+v", level, err)
		return
	}
	logrus.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize upstream client and catalog cache
	upstreamClient := upstream.NewHTTPClient(cfg.Upstream)
	var listCache cache.DoctorListCache = cache.NoopDoctorListCache{}
	if redisClient != nil {
		listCache = cache.NewRedisDoctorListCache(redisClient, cfg.Upstream.URL, cfg.Redis.CacheTTL)
	}

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(upstreamClient, listCache, log)

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo, cfg.Catalog.TTL)

	// Initialize view
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	directoryPageHandler := handler.NewDirectoryPageHandler(log, directoryUsecase, renderer)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, directoryPageHandler, corsMiddleware, requestLoggerMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Doctor list source: %s", app.Config.Upstream.URL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the Redis connection when one was opened
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
