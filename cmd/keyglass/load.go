package main

import (
	"context"
	"fmt"

	"github.com/keyglass/keyglass/internal/bindings"
	"github.com/keyglass/keyglass/internal/config"
	"github.com/keyglass/keyglass/internal/gsettings"
	"github.com/keyglass/keyglass/internal/logging"
	"github.com/keyglass/keyglass/internal/xdg"
)

// loadBindings performs the single startup pass over the settings store:
// config, schema summaries, then the store dump flattened into rows.
func loadBindings(ctx context.Context) ([]bindings.Binding, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	loader := &bindings.Loader{
		Source: &gsettings.CLI{
			Bin:     cfg.GSettingsBin,
			Timeout: cfg.GSettingsTimeout,
			Logger:  logger,
		},
		Summaries:      gsettings.LoadSummaries(xdg.DataDirs(), logger),
		ExtraSchemas:   cfg.ExtraSchemas,
		ExcludeSchemas: cfg.ExcludeSchemas,
		Logger:         logger,
	}

	return loader.Load(ctx)
}
