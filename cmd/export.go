package cmd

import (
	"context"
	"fmt"

	"position-sync/core/config"
	"position-sync/core/database"
	"position-sync/core/logger"
	"position-sync/feature/positions/export"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportFile string

// exportCmd dumps the positions table into an XML snapshot.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the positions table to an XML snapshot",
	Long: `Export every row of the positions table into an XML snapshot file.

The destination directory is created if it does not exist. The produced
file can be fed back to 'position-sync sync' unchanged.

Examples:
  # Export to an explicit file
  position-sync export --file ./data/export.xml

  # Export to the configured default (EXPORT_FILE_PATH)
  position-sync export`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path of the XML snapshot to write (defaults to export.file_path)")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	path := exportFile
	if path == "" {
		path = cfg.Export.FilePath
	}
	if path == "" {
		return fmt.Errorf("no export path given: pass --file or set export.file_path")
	}

	l.Info("Starting export", zap.String("path", path))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	exporter := export.NewExporter(db, l)

	if err := exporter.Export(ctx, path); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	return nil
}
