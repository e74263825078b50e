package exporter

// Config holds configuration for export runs.
type Config struct {
	// OutputDir is the directory export artifacts are written to.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// Upload archives every export to object storage when true.
	Upload bool `mapstructure:"upload" default:"false"`
	// Prefix is the object key prefix for archived exports.
	Prefix string `mapstructure:"prefix" default:"exports"`
}
