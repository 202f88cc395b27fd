// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database with
// sane pool settings and DSN-level timeouts, and verifies it with a ping.
//
// # Schema Inspection
//
// The positions table schema is managed outside of this tool, so the package
// includes tools to inspect it before a sync touches it: listing table
// columns (dialect-aware, MySQL and SQLite) and verifying that the expected
// columns are present.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.VerifyTableColumns(db, "positions", []string{"dep_code", "dep_job", "description"})
package database
