package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"asset-exchange/core/config"
	"asset-exchange/core/database"
	"asset-exchange/core/logger"
	"asset-exchange/core/storage"
	"asset-exchange/feature/assets/exporter"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/store"
	"asset-exchange/feature/assets/store/gormstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the export command
	exportOutputDir string
	exportUpload    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all asset records to a date-stamped file",
	Long: `Export every stored asset record as comma-delimited text.

The artifact is named assets_export_<date>.csv and includes every column,
so an export doubles as a backup that re-imports cleanly.

Examples:
  # Write the export into the current directory
  asset-exchange export

  # Write elsewhere and archive a copy to object storage
  asset-exchange export --output /var/backups --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputDir, "output", "", "Directory to write the artifact to (default from config)")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Also archive the artifact to object storage")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	outputDir := cfg.Export.OutputDir
	if cmd.Flags().Changed("output") {
		outputDir = exportOutputDir
	}
	upload := cfg.Export.Upload || exportUpload

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	st, err := gormstore.New(db)
	if err != nil {
		return fmt.Errorf("failed to prepare record store: %w", err)
	}

	records, err := store.ListAll(ctx, st)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, schema.Default(), records); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	name := exporter.Filename(time.Now())
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	l.Info("Export written",
		zap.String("path", path),
		zap.Int("records", len(records)))

	if upload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		archiver := &exporter.Archiver{
			Client: client,
			Bucket: cfg.Storage.Bucket,
			Prefix: cfg.Export.Prefix,
		}
		if err := archiver.Store(ctx, name, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to archive export: %w", err)
		}

		l.Info("Export archived",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Export.Prefix),
			zap.String("name", name))
	}

	return nil
}
