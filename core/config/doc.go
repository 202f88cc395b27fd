// Package config provides configuration management for position-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Database: MySQL connection details
//   - Log: Logging level and format
//   - Export: default destination file for the export command
//   - Import: default source file for the sync command
//
// Defaults come from 'default' struct tags, bound recursively so that
// every key is visible to AutomaticEnv (e.g. DATABASE_HOST, IMPORT_FILE_PATH).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Import.FilePath)
package config
