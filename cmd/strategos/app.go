package main

import (
	"context"
	"os"

	"github.com/strategos/strategos/internal/platform"
	"github.com/strategos/strategos/pkg/config"
)

// openApp loads configuration and builds the service graph. The CLI talks
// to the same database and storage as the daemon.
func openApp(ctx context.Context, cfgPath string) (*platform.App, error) {
	if cfgPath == "" {
		cfgPath = os.Getenv("STRATEGOS_CONFIG")
	}
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			cfgPath = config.FindConfigFile(wd)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	return platform.NewApp(ctx, cfg)
}
