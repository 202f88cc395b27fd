package sync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"position-sync/feature/positions/models"
	"position-sync/feature/positions/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDatabase wraps any database-level failure (constraint violation,
// connectivity loss, transaction abort) raised while applying a snapshot.
// Parse-time failures propagate unchanged and never carry this sentinel.
var ErrDatabase = errors.New("database sync failed")

// insertBatchSize bounds the number of rows per INSERT statement.
const insertBatchSize = 500

// Stats reports what a successful sync did.
type Stats struct {
	// Parsed is the number of distinct keys in the snapshot.
	Parsed int
	// Deleted is the number of table rows removed because their key was
	// absent from the snapshot.
	Deleted int
	// Upserted is the number of snapshot rows applied (inserted or updated).
	Upserted int
}

// Engine reconciles the positions table against XML snapshots.
type Engine struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(db *gorm.DB, log *zap.Logger) *Engine {
	return &Engine{db: db, log: log}
}

// Sync makes the positions table contents exactly equal the snapshot at path.
//
// The snapshot is parsed and validated before any database work; parser
// failures propagate unchanged with zero effect on persisted state. All
// table work then runs inside a single serializable transaction:
//
//  1. load the snapshot into a session temporary staging table,
//  2. delete every table row whose key is absent from staging,
//  3. upsert every snapshot row (insert, or overwrite description on
//     key conflict),
//  4. drop staging and commit.
//
// Any failure rolls the transaction back in its entirety, so a sync either
// fully applies or leaves the table exactly as it was. Running the same
// sync twice is a no-op on the second run.
func (e *Engine) Sync(ctx context.Context, path string) (Stats, error) {
	snap, err := snapshot.Parse(path)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Parsed: len(snap)}

	staging := make([]models.StagingRow, 0, len(snap))
	upserts := make([]models.Row, 0, len(snap))
	for _, p := range snap {
		staging = append(staging, models.StagingRow{
			DepCode:     p.DepCode,
			DepJob:      p.DepJob,
			Description: p.Description,
		})
		upserts = append(upserts, models.Row{
			DepCode:     p.DepCode,
			DepJob:      p.DepJob,
			Description: p.Description,
		})
	}

	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createStagingTable(tx); err != nil {
			return err
		}

		if err := tx.CreateInBatches(&staging, insertBatchSize).Error; err != nil {
			return fmt.Errorf("load staging table: %w", err)
		}
		e.log.Debug("staging table loaded", zap.Int("rows", len(staging)))

		deleted, err := deleteUnmatchedRows(tx)
		if err != nil {
			return err
		}
		stats.Deleted = deleted
		e.log.Debug("unmatched rows deleted", zap.Int("rows", deleted))

		// Single insert-or-update on key conflict; never two unguarded
		// statements that could race.
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dep_code"}, {Name: "dep_job"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).CreateInBatches(&upserts, insertBatchSize)
		if res.Error != nil {
			return fmt.Errorf("upsert positions: %w", res.Error)
		}
		stats.Upserted = len(upserts)
		e.log.Debug("snapshot rows upserted", zap.Int("rows", len(upserts)))

		return dropStagingTable(tx)
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		return Stats{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return stats, nil
}

// deleteUnmatchedRows removes every positions row whose natural key does not
// appear in the staging table. The difference is computed by the database
// through an existence check on the staging primary key, not by shipping
// the table to the client.
func deleteUnmatchedRows(tx *gorm.DB) (int, error) {
	res := tx.Exec(`DELETE FROM positions WHERE NOT EXISTS (
		SELECT 1 FROM positions_staging s
		WHERE s.dep_code = positions.dep_code AND s.dep_job = positions.dep_job)`)
	if res.Error != nil {
		return 0, fmt.Errorf("delete unmatched rows: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}
