package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/galleon/backend/src/config"
	"github.com/username/galleon/backend/src/database"
	"github.com/username/galleon/backend/src/handlers"
	"github.com/username/galleon/backend/src/logger"
	"github.com/username/galleon/backend/src/parser"
	"github.com/username/galleon/backend/src/services"
	"golang.org/x/time/rate"
)

func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				logger.L.Warn("Rate limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"remoteAddr", r.RemoteAddr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == config.Cfg.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Requested-With, If-None-Match, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Galleon backend server starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing caches...")
	summaryCache := cache.New(config.Cfg.SummaryCacheTTL, config.Cfg.SummaryCacheCleanup)
	recentCache := cache.New(config.Cfg.DuplicateWindow, 2*config.Cfg.DuplicateWindow)

	logger.L.Info("Initializing parser engine and services...")
	engine := parser.New()
	ledgerService := services.NewLedgerService(engine, summaryCache, recentCache)

	if config.Cfg.SeedDemoData {
		if err := services.SeedDemoData(time.Now); err != nil {
			logger.L.Error("Failed to seed demo data", "error", err)
		}
	}

	parseHandler := handlers.NewParseHandler(engine)
	txHandler := handlers.NewTransactionHandler(ledgerService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/parse", parseHandler.HandleParse)
	apiRouter.HandleFunc("POST /api/parse/batch", parseHandler.HandleParseBatch)
	apiRouter.HandleFunc("GET /api/merchants/suggest", parseHandler.HandleSuggestMerchants)
	apiRouter.HandleFunc("GET /api/categories", parseHandler.HandleGetCategories)

	apiRouter.HandleFunc("POST /api/transactions", txHandler.HandleCreateTransaction)
	apiRouter.HandleFunc("GET /api/transactions", txHandler.HandleListTransactions)
	apiRouter.HandleFunc("GET /api/transactions/summary", txHandler.HandleGetSummary)
	apiRouter.HandleFunc("DELETE /api/transactions/{id}", txHandler.HandleDeleteTransaction)
	apiRouter.HandleFunc("DELETE /api/transactions/seed", txHandler.HandleClearSeedData)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Galleon backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)
	finalHandler := enableCORS(
		rateLimitMiddleware(limiter)(
			handlers.RequestIDMiddleware(
				handlers.LoggingMiddleware(rootMux))))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
