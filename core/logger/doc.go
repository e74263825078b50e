// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Batch Awareness
//
// Import and export runs are identified by a batch ID. The WithBatch helper
// attaches it to the log entry, ensuring that all logs related to a specific
// run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Store connected")
//
//	// In a batch run:
//	l := logger.WithBatch(log, batchID)
//	l.Error("Submission failed", zap.Error(err))
package logger
