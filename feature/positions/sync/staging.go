package sync

import (
	"fmt"

	"gorm.io/gorm"
)

// The staging table mirrors the snapshot inside the database so the set
// difference against positions is computed by the database's own index
// machinery. It is a session temporary table: invisible to other sessions
// and gone once the connection is recycled.

const createStagingSQL = `CREATE TEMPORARY TABLE positions_staging (
	dep_code VARCHAR(20) NOT NULL,
	dep_job VARCHAR(100) NOT NULL,
	description VARCHAR(255),
	PRIMARY KEY (dep_code, dep_job)
)`

// createStagingTable creates an empty staging table on the transaction's
// connection. Temporary tables are session scoped, not transaction scoped,
// so a pooled connection may still hold one from an aborted run; drop first.
func createStagingTable(tx *gorm.DB) error {
	if err := dropStagingTable(tx); err != nil {
		return err
	}
	if err := tx.Exec(createStagingSQL).Error; err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}
	return nil
}

// dropStagingTable removes the staging table if present. MySQL needs the
// TEMPORARY keyword to avoid an implicit commit; SQLite rejects it.
func dropStagingTable(tx *gorm.DB) error {
	stmt := "DROP TABLE IF EXISTS positions_staging"
	if tx.Dialector.Name() == "mysql" {
		stmt = "DROP TEMPORARY TABLE IF EXISTS positions_staging"
	}
	if err := tx.Exec(stmt).Error; err != nil {
		return fmt.Errorf("drop staging table: %w", err)
	}
	return nil
}
