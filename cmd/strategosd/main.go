// Command strategosd is the Strategos platform service.
// It serves the strategy REST API, the automation webhook endpoint,
// and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/strategos/strategos/internal/api"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/internal/platform"
	"github.com/strategos/strategos/internal/webhook"
	"github.com/strategos/strategos/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("STRATEGOS_CONFIG")
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			cfgPath = config.FindConfigFile(wd)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.Error("load config", "err", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	app, err := platform.NewApp(ctx, cfg)
	if err != nil {
		logging.Error("initialize", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	handler := api.NewHandler(
		app.Generation,
		app.Explorations,
		app.Ranking,
		app.Weights,
		app.Baselines,
		app.Curator,
		app.ArchiveStore,
		app.Decisions,
		app.Evolution,
		cfg.Scoring.ArchiveMinScore,
	)

	// API routes sit behind the key check; the webhook authenticates with
	// its own HMAC signature and the health check stays open.
	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.APIKeyAuth(cfg.Server.APIKey)(apiMux))
	mux.Handle("POST /v1/webhooks/automation", webhook.NewHandler(
		[]byte(cfg.Server.WebhookSecret),
		app.Baselines,
		app.Curator,
		cfg.Scoring.ArchiveMinScore,
	))
	mux.HandleFunc("GET /healthz", healthHandler(app.DB))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.CORS(mux),
	}

	go func() {
		logging.Info("starting strategosd", "port", cfg.Server.Port,
			"storage", cfg.Storage.Backend, "oracle", cfg.Oracle.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logging.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		logging.Error("shutdown", "err", err)
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
