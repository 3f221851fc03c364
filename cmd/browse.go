package cmd

import (
	"fmt"

	"bucket-browser/core/config"
	"bucket-browser/core/logger"
	"bucket-browser/core/storage"
	"bucket-browser/feature/browse"
	"bucket-browser/feature/browse/render"

	"go.uber.org/zap"
)

// browseEnv is what the one-shot commands need to talk to the bucket.
type browseEnv struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	feature *browse.Feature
	format  render.SizeFormat
}

func loadBrowseEnv() (*browseEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	format, err := cfg.Browse.SizeFormat()
	if err != nil {
		return nil, err
	}

	return &browseEnv{
		cfg:     cfg,
		logger:  logg,
		client:  client,
		feature: browse.NewFeature(client, cfg.Storage.Bucket, logg, format),
		format:  format,
	}, nil
}
