package cmd

import (
	"context"
	"fmt"

	"position-sync/core/config"
	"position-sync/core/database"
	"position-sync/core/logger"
	"position-sync/feature/positions/models"
	possync "position-sync/feature/positions/sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncFile string

// syncCmd synchronizes the positions table from an XML snapshot.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the positions table from an XML snapshot",
	Long: `Synchronize the positions table so its contents exactly match an XML snapshot.

Rows present in the snapshot are inserted or updated, rows absent from it
are deleted. The whole operation runs in a single database transaction:
it either fully applies or leaves the table untouched.

Examples:
  # Sync from an explicit snapshot file
  position-sync sync --file ./data/import.xml

  # Sync from the configured default (IMPORT_FILE_PATH)
  position-sync sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&syncFile, "file", "f", "", "Path to the XML snapshot (defaults to import.file_path)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger with a per-run correlation id
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	// Resolve snapshot path: flag wins, config is the fallback
	path := syncFile
	if path == "" {
		path = cfg.Import.FilePath
	}
	if path == "" {
		return fmt.Errorf("no snapshot path given: pass --file or set import.file_path")
	}

	l.Info("Starting synchronization", zap.String("path", path))

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// The table schema is managed externally; verify it before touching it.
	if err := database.VerifyTableColumns(db, models.Row{}.TableName(), models.Columns()); err != nil {
		return fmt.Errorf("positions table check failed: %w", err)
	}

	engine := possync.NewEngine(db, l)

	stats, err := engine.Sync(ctx, path)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Synchronization complete",
		zap.String("path", path),
		zap.Int("snapshot_rows", stats.Parsed),
		zap.Int("deleted", stats.Deleted),
		zap.Int("upserted", stats.Upserted),
	)

	return nil
}
