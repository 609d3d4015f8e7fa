package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/config"
	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/handlers"
	"github.com/mecoding/todo-api/internal/logger"
	"github.com/mecoding/todo-api/internal/middleware"
	"github.com/mecoding/todo-api/internal/services/category"
	"github.com/mecoding/todo-api/internal/services/todo"
	"github.com/mecoding/todo-api/internal/telemetry"
)

var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// OpenTelemetry, optional
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "todo-api", cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Warn("failed_to_close_database_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_database")

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx); err != nil {
		migrateCancel()
		zapLogger.Fatal("failed_to_migrate_database", zap.Error(err))
	}
	migrateCancel()
	zapLogger.Info("database_schema_ready")

	// Repositories and services
	todoRepo := database.NewTodoRepository(db)
	todoRepo.SetLogger(zapLogger)
	categoryRepo := database.NewCategoryRepository(db)

	todoService := todo.NewService(todoRepo, zapLogger)
	categoryService := category.NewService(categoryRepo, zapLogger)

	// Handlers
	todoHandler := handlers.NewTodoHandler(todoService, zapLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, zapLogger)
	healthChecker := handlers.NewHealthChecker(db)

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// Router and middleware (gorilla/mux runs middleware in registration
	// order, outermost first)
	r := mux.NewRouter()

	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("todo-api"))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType(zapLogger))
	r.Use(middleware.Timeout(middleware.DefaultRequestTimeout))
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(zapLogger))

	// Public routes
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/version", versionInfo).Methods("GET")

	// API v1 routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()

	todosRouter := apiRouter.PathPrefix("/todos").Subrouter()
	todosRouter.Use(rateLimitMW)
	todoHandler.RegisterRoutes(todosRouter)

	categoriesRouter := apiRouter.PathPrefix("/categories").Subrouter()
	categoriesRouter.Use(rateLimitMW)
	categoryHandler.RegisterRoutes(categoriesRouter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(r)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        corsHandler,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

func versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
}
