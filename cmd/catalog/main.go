package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalog/internal/config"
	logpkg "github.com/kailas-cloud/catalog/internal/logger"
	"github.com/kailas-cloud/catalog/internal/metrics"
	categoryrepo "github.com/kailas-cloud/catalog/internal/repository/category"
	productrepo "github.com/kailas-cloud/catalog/internal/repository/product"
	"github.com/kailas-cloud/catalog/internal/repository/seed"
	userrepo "github.com/kailas-cloud/catalog/internal/repository/user"
	chiTransport "github.com/kailas-cloud/catalog/internal/transport/chi"
	categoryuc "github.com/kailas-cloud/catalog/internal/usecase/category"
	healthuc "github.com/kailas-cloud/catalog/internal/usecase/health"
	productuc "github.com/kailas-cloud/catalog/internal/usecase/product"
	useruc "github.com/kailas-cloud/catalog/internal/usecase/user"
	"github.com/kailas-cloud/catalog/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalog API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("seed_file", cfg.Catalog.SeedFile),
	)

	data, err := seed.Load(cfg.Catalog.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load seed data", zap.Error(err))
	}
	logger.Info("Seed data loaded",
		zap.Int("products", len(data.Products)),
		zap.Int("categories", len(data.Categories)),
		zap.Int("users", len(data.Users)),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterFilterMetrics()

	// Record sources
	products := productrepo.New(data.Products)
	categories := categoryrepo.New(data.Categories)
	users := userrepo.New(data.Users)

	// Use case services. Filter configs are checked here; a facet group
	// without a predicate stops startup.
	limits := cfg.Catalog.Limits()
	productSvc, err := productuc.New(products, categories)
	if err != nil {
		logger.Fatal("Invalid product filter configuration", zap.Error(err))
	}
	productSvc.WithLimits(limits)

	userSvc, err := useruc.New(users)
	if err != nil {
		logger.Fatal("Invalid user filter configuration", zap.Error(err))
	}
	userSvc.WithLimits(limits)

	categorySvc := categoryuc.New(categories, products)
	healthSvc := healthuc.New(
		healthuc.Source{Name: "products", Pinger: products},
		healthuc.Source{Name: "categories", Pinger: categories},
		healthuc.Source{Name: "users", Pinger: users},
	)

	server := chiTransport.NewServer(productSvc, userSvc, categorySvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORS(cfg.HTTP.CORSAllowedOrigins))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
