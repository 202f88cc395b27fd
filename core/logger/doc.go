// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Correlation
//
// Every CLI invocation gets a run_id attached via WithRunID, ensuring that
// all logs related to a specific export or sync run can be correlated.
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
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Sync started")
package logger
