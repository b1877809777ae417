// Command import loads a spreadsheet of exchange-listed securities into the
// shared symbols catalog.
//
// Usage:
//
//	go run ./cmd/import -file data/nse_master.xlsx [-snapshot public/symbols.json] [-batch 500]
//
// The run is fail-fast: the first failing upsert batch aborts with a
// non-zero exit so the catalog is never left silently partial.
package main

import (
	"errors"
	"flag"
	"os"

	"folio/internal/database"
	"folio/internal/importer"
	"folio/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Import error: %v", err)
	}
}

func run() error {
	file := flag.String("file", "data/nse_master.xlsx", "path to the .xlsx symbol master")
	snapshot := flag.String("snapshot", "", "optional path for a flattened JSON snapshot")
	batch := flag.Int("batch", importer.DefaultBatchSize, "records per upsert batch")
	flag.Parse()

	log := logger.Get()

	log.Infof("Reading workbook: %s", *file)
	rows, err := importer.ReadWorkbook(*file)
	if err != nil {
		if errors.Is(err, importer.ErrNoRows) {
			return errors.New("no rows found in the sheet")
		}
		return err
	}

	records, stats := importer.Normalize(rows)
	log.Infof("Parsed rows: %d", stats.Parsed)
	log.Infof("Missing symbol: %d, Missing name: %d", stats.MissingSymbol, stats.MissingName)
	if stats.MissingSymbol > 0 {
		log.Warn("Some rows lack a symbol. Check the workbook headers against the column map.")
	}

	records = importer.Deduplicate(records)

	dbConfig, err := database.NewConfig()
	if err != nil {
		return err
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return err
	}

	if err := importer.Upsert(dbManager.DB(), records, *batch); err != nil {
		return err
	}
	log.Infof("Upsert complete. Total rows upserted: %d", len(records))

	// Snapshot failures are not fatal; the catalog table is already updated.
	if *snapshot != "" {
		if err := importer.WriteSnapshot(*snapshot, records); err != nil {
			log.Warnf("Could not write snapshot: %v", err)
		} else {
			log.Infof("Wrote snapshot: %s", *snapshot)
		}
	}

	return nil
}
