package cmd

import (
	"context"
	"fmt"

	"asset-exchange/core/config"
	"asset-exchange/core/logger"
	"asset-exchange/core/storage"
	"asset-exchange/feature/assets/exporter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "List export artifacts archived in object storage",
	RunE:  runArchives,
}

func init() {
	RootCmd.AddCommand(archivesCmd)
}

func runArchives(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	archiver := &exporter.Archiver{
		Client: client,
		Bucket: cfg.Storage.Bucket,
		Prefix: cfg.Export.Prefix,
	}

	keys, err := archiver.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}

	for _, key := range keys {
		l.Info("Archived export", zap.String("key", key))
	}
	l.Info("Archive listing complete", zap.Int("count", len(keys)))

	return nil
}
