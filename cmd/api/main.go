package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartlife/ai-backend/internal/advisor"
	"github.com/smartlife/ai-backend/internal/api/handlers"
	"github.com/smartlife/ai-backend/internal/api/middleware"
	"github.com/smartlife/ai-backend/internal/config"
	"github.com/smartlife/ai-backend/internal/gemini"
	"github.com/smartlife/ai-backend/internal/logger"
)

func main() {
	var port = flag.String("port", "", "HTTP server port (overrides PORT env)")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != "" {
		cfg.Port = *port
	}

	apiKey := cfg.APIKey()
	if apiKey == "" {
		log.Warn().Msg("No Gemini API key configured - AI endpoints will serve fallback responses")
	}

	gen := gemini.NewClient(apiKey, log)
	svc := advisor.NewService(gen, advisor.Config{
		PreferredModels: cfg.PreferredModels,
		FallbackModel:   cfg.FallbackModel,
		HistoryWindow:   cfg.HistoryWindow,
		CallTimeout:     cfg.CallTimeout,
	}, log)

	// Informational only: show which generation models this key can reach.
	if apiKey != "" {
		listCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if models, err := gen.ListModelIDs(listCtx); err != nil {
			log.Warn().Err(err).Msg("Could not list Gemini models")
		} else {
			log.Info().Strs("models", models).Msg("Generation-capable Gemini models")
		}
		cancel()
	}

	financeHandler := handlers.NewFinanceHandler(svc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze_finance", requirePost(financeHandler.AnalyzeFinance))
	mux.HandleFunc("/chat_finance", requirePost(financeHandler.ChatFinance))
	mux.HandleFunc("/parse_schedule", requirePost(financeHandler.ParseSchedule))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		financeHandler.Health(w, r)
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// Write timeout must outlast the bounded provider call.
		WriteTimeout: cfg.CallTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Bool("ai_enabled", apiKey != "").Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func requirePost(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		next(w, r)
	}
}
