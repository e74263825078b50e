package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"asset-exchange/core/config"
	"asset-exchange/core/logger"
	"asset-exchange/feature/assets/exporter"
	"asset-exchange/feature/assets/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var templateOutputDir string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the import template file",
	Long: `Write the fixed import template (assets_import_template.csv).

The template documents the required columns and the allowed values for
every enumerated field, and contains a commented example row.`,
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringVar(&templateOutputDir, "output", "", "Directory to write the template to (default from config)")

	RootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
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
		outputDir = templateOutputDir
	}

	path := filepath.Join(outputDir, exporter.TemplateFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := exporter.WriteTemplate(f, schema.Default()); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	l.Info("Template written", zap.String("path", path))
	return nil
}
