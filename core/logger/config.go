package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output format (console, json).
	Format string `mapstructure:"format" default:"console"`
}
