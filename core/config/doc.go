// Package config provides configuration management for Asset Exchange.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Import: duplicate disposition, worker count, snapshot policy
//   - Export: output directory, archive upload toggle, key prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Host)
package config
