package platform

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/baseline"
	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/internal/decision"
	"github.com/strategos/strategos/internal/evolution"
	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/generation"
	"github.com/strategos/strategos/internal/oracle"
	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/internal/storage"
	"github.com/strategos/strategos/internal/weights"
	"github.com/strategos/strategos/pkg/config"
)

// App wires the full service graph from configuration. Both the CLI and
// the daemon compose through it so they agree on storage layout and
// scoring defaults.
type App struct {
	DB           *sql.DB
	Storage      storage.Client
	Explorations *exploration.Service
	Collector    *collect.Collector
	Ranking      *ranking.Service
	Weights      *weights.Service
	Baselines    *baseline.Tracker
	ArchiveStore *archive.PostgresStore
	Curator      *archive.Curator
	Decisions    *decision.Service
	Generation   *generation.Service
	Evolution    *evolution.Engine
	Config       *config.Config
}

// NewApp opens the database, runs migrations, and builds all services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := sql.Open("postgres", cfg.Server.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		db.Close()
		return nil, err
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	explorations := exploration.NewService(db, store)
	collector := collect.NewCollector(explorations)
	archiveStore := archive.NewPostgresStore(db)
	curator := archive.NewCurator(collector, archiveStore)
	baselines := baseline.NewTracker(collector, baseline.NewPostgresStore(db))
	decisions := decision.NewService(db)

	provider, err := newProvider(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	gen := generation.NewService(explorations, provider, []generation.ContextProvider{
		generation.NewArchiveContext(archiveStore, 5),
	})

	return &App{
		DB:           db,
		Storage:      store,
		Explorations: explorations,
		Collector:    collector,
		Ranking:      ranking.NewService(collector),
		Weights:      weights.NewService(db),
		Baselines:    baselines,
		ArchiveStore: archiveStore,
		Curator:      curator,
		Decisions:    decisions,
		Generation:   gen,
		Evolution:    evolution.NewEngine(decisions, archiveStore, collector, gen),
		Config:       cfg,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.DB.Close()
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Client, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		path := cfg.Storage.LocalPath
		if path == "" {
			path = config.DataDir()
		}
		return storage.NewLocalStorage(path), nil
	case "s3":
		return storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
		})
	case "gcs":
		return storage.NewGCSStorage(ctx, cfg.Storage.GCSBucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newProvider(cfg *config.Config) (oracle.Provider, error) {
	switch cfg.Oracle.Provider {
	case "", "claude":
		return oracle.NewClaudeProvider(os.Getenv("ANTHROPIC_API_KEY"), cfg.Oracle.Model), nil
	case "openai":
		return oracle.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), cfg.Oracle.Model), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Oracle.Provider)
	}
}
