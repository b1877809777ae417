package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"folio/internal/logger"
	"folio/internal/models"
)

// DefaultBatchSize is the number of records per upsert statement.
const DefaultBatchSize = 500

// Upsert writes records into the symbols table in fixed-size batches,
// keyed on symbol. Batches apply strictly in order and the first failing
// batch aborts the run: reference data must be all-or-nothing per run,
// never silently partial.
func Upsert(db *gorm.DB, records []Record, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		batch := make([]models.Symbol, 0, end-start)
		for _, rec := range records[start:end] {
			batch = append(batch, models.Symbol{
				Symbol:   rec.Symbol,
				Name:     rec.Name,
				ISIN:     rec.ISIN,
				Exchange: rec.Exchange,
				Metadata: datatypes.JSONMap(rec.Metadata),
			})
		}

		logger.Get().Infof("Upserting rows %d..%d", start+1, end)
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "isin", "exchange", "metadata", "updated_at"}),
		}).Create(&batch).Error; err != nil {
			return fmt.Errorf("upsert batch starting at row %d: %w", start+1, err)
		}
	}

	return nil
}

// snapshotEntry is the flattened shape written by WriteSnapshot.
type snapshotEntry struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Exchange *string `json:"exchange"`
}

// WriteSnapshot writes a flattened {symbol, name, exchange} JSON file for
// lightweight offline consumption. The catalog table stays the source of
// truth; this is a derived artifact.
func WriteSnapshot(path string, records []Record) error {
	entries := make([]snapshotEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, snapshotEntry{
			Symbol:   rec.Symbol,
			Name:     rec.Name,
			Exchange: rec.Exchange,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
