package export

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"position-sync/feature/positions/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrDirectoryCreate is returned when the destination directory cannot be created.
	ErrDirectoryCreate = errors.New("failed to create export directory")
	// ErrWrite is returned when the snapshot file cannot be written.
	ErrWrite = errors.New("failed to write export file")
)

// xmlDocument is the root <positions> element of a snapshot file.
type xmlDocument struct {
	XMLName   xml.Name      `xml:"positions"`
	Positions []xmlPosition `xml:"position"`
}

type xmlPosition struct {
	DepCode     string `xml:"depCode"`
	DepJob      string `xml:"depJob"`
	Description string `xml:"description"`
}

// Exporter dumps the positions table into XML snapshot files. It is a pure
// dump with no conflict logic and never shares a transaction with sync.
type Exporter struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewExporter creates an exporter.
func NewExporter(db *gorm.DB, log *zap.Logger) *Exporter {
	return &Exporter{db: db, log: log}
}

// Export reads all positions rows and writes them as an XML snapshot at
// path, creating the destination directory if absent. Rows are ordered by
// natural key so repeated exports of the same table are byte-identical.
func (e *Exporter) Export(ctx context.Context, path string) error {
	var rows []models.Row
	if err := e.db.WithContext(ctx).Order("dep_code, dep_job").Find(&rows).Error; err != nil {
		return fmt.Errorf("fetch positions: %w", err)
	}

	doc := xmlDocument{Positions: make([]xmlPosition, 0, len(rows))}
	for _, r := range rows {
		doc.Positions = append(doc.Positions, xmlPosition{
			DepCode:     r.DepCode,
			DepJob:      r.DepJob,
			Description: r.Description,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrDirectoryCreate, err)
		}
	}

	payload := append([]byte(xml.Header), out...)
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	e.log.Info("Snapshot exported", zap.String("path", path), zap.Int("positions", len(rows)))
	return nil
}
