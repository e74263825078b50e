package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"asset-exchange/core/config"
	"asset-exchange/core/database"
	"asset-exchange/core/logger"
	"asset-exchange/feature/assets/importer"
	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/store/gormstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	importOnDuplicate string
	importSnapshot    string
	importWorkers     int
	importDryRun      bool
	importReportPath  string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import asset records from a delimited text file",
	Long: `Import asset records from a comma-delimited file.

Every row is validated independently; invalid rows are reported with their
original file line number and the batch continues. Candidates matching an
existing record by name, hostname or IP address are skipped or imported
anyway, per --on-duplicate.

Examples:
  # Import, skipping duplicates (default)
  asset-exchange import assets.csv

  # Import duplicates anyway with 8 submission workers
  asset-exchange import assets.csv --on-duplicate import_anyway --workers 8

  # Validate and reconcile only, store nothing
  asset-exchange import assets.csv --dry-run

  # Write the report as JSON next to the input
  asset-exchange import assets.csv --report report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importOnDuplicate, "on-duplicate", "", "Disposition for duplicates: skip or import_anyway (default from config)")
	importCmd.Flags().StringVar(&importSnapshot, "snapshot", "", "Existing-record snapshot policy: once or per_row (default from config)")
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "Concurrent store submissions (default from config)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate and reconcile without storing anything")
	importCmd.Flags().StringVar(&importReportPath, "report", "", "Write the import report to this path as JSON")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts := importOptions(cmd, cfg.Import)
	if !opts.IsValidOnDuplicate() {
		return fmt.Errorf("invalid duplicate disposition %q: must be %s or %s",
			opts.OnDuplicate, importer.DuplicateSkip, importer.DuplicateImportAnyway)
	}
	if !opts.IsValidSnapshot() {
		return fmt.Errorf("invalid snapshot policy %q: must be %s or %s",
			opts.Snapshot, importer.SnapshotOnce, importer.SnapshotPerRow)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	st, err := gormstore.New(db)
	if err != nil {
		return fmt.Errorf("failed to prepare record store: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	l.Info("Starting import",
		zap.String("file", args[0]),
		zap.String("on_duplicate", opts.OnDuplicate),
		zap.Bool("dry_run", opts.DryRun))

	rep, err := importer.New(st, l, opts).Run(ctx, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printImportReport(l, rep)

	if importReportPath != "" {
		if err := writeReportJSON(importReportPath, rep); err != nil {
			return err
		}
		l.Info("Report written", zap.String("path", importReportPath))
	}

	return nil
}

// importOptions starts from the configured defaults and lets flags that
// were actually set override them.
func importOptions(cmd *cobra.Command, cfg importer.Config) importer.Options {
	opts := cfg.Options()
	if cmd.Flags().Changed("on-duplicate") {
		opts.OnDuplicate = importOnDuplicate
	}
	if cmd.Flags().Changed("snapshot") {
		opts.Snapshot = importSnapshot
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = importWorkers
	}
	opts.DryRun = importDryRun
	return opts
}

// printImportReport prints the batch outcome using logger.
func printImportReport(l *zap.Logger, rep *models.ImportReport) {
	l.Info("Import report",
		zap.Int("total_rows", rep.TotalRows),
		zap.Int("succeeded", rep.Succeeded),
		zap.Int("failed", len(rep.Failed)),
		zap.Int("skipped_duplicates", len(rep.SkippedDuplicates)),
	)

	for _, f := range rep.Failed {
		l.Warn("Row failed",
			zap.String("identifier", f.Identifier),
			zap.String("reason", f.Reason),
		)
	}
	for _, d := range rep.SkippedDuplicates {
		l.Info("Duplicate skipped",
			zap.String("identifier", d.Identifier),
			zap.Strings("existing_ids", d.ExistingIDs),
		)
	}
}

func writeReportJSON(path string, rep *models.ImportReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
