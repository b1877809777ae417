// Package importer loads a spreadsheet of exchange-listed securities,
// normalizes the rows into the canonical symbol shape, and bulk-upserts
// them into the shared symbols catalog. Re-running an import with updated
// data overwrites existing rows; it never duplicates them.
package importer

import "strings"

// columnMap maps known spreadsheet header spellings (lowercased, trimmed)
// to canonical field names. Exchange masters disagree wildly on header
// text; unrecognized headers are simply ignored.
var columnMap = map[string]string{
	// symbol variations
	"symbol":        "symbol",
	"scrip":         "symbol",
	"scrip code":    "symbol",
	"tradingsymbol": "symbol",
	"sc_code":       "symbol",

	// name variations
	"name of company": "name",
	"security name":   "name",
	"company name":    "name",
	"issuer name":     "name",
	"company":         "name",

	// isin variations
	"isin number": "isin",
	"isin":        "isin",
	"isin code":   "isin",

	// optional extras
	"series":        "series",
	"industry":      "industry",
	"industry type": "industry",
}

// Record is the canonical shape of one catalog entry ready for upsert.
type Record struct {
	Symbol   string
	Name     string
	ISIN     *string
	Exchange *string
	Metadata map[string]interface{}
}

// Stats reports per-run diagnostics. Rows missing a symbol or a name are
// counted but only rows missing both are dropped.
type Stats struct {
	Parsed        int
	MissingSymbol int
	MissingName   int
}

// canonicalHeader resolves a raw header cell to a canonical field name,
// or "" if the header is not recognized.
func canonicalHeader(raw string) string {
	return columnMap[strings.ToLower(strings.TrimSpace(raw))]
}

// projectRow keeps only the recognized columns of a row, trimming every
// value and dropping entries that are empty after trimming.
func projectRow(row map[string]string) map[string]string {
	out := map[string]string{}
	for header, value := range row {
		key := canonicalHeader(header)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// Normalize projects raw header→cell rows into canonical records. Rows
// identifiable by neither symbol nor name are dropped; symbol is
// uppercased; series becomes the exchange; a recognized industry column is
// preserved in metadata, which otherwise stays empty.
func Normalize(rows []map[string]string) ([]Record, Stats) {
	var stats Stats
	records := make([]Record, 0, len(rows))

	for _, raw := range rows {
		row := projectRow(raw)
		if row["symbol"] == "" && row["name"] == "" {
			continue
		}
		if row["symbol"] == "" {
			stats.MissingSymbol++
		}
		if row["name"] == "" {
			stats.MissingName++
		}

		rec := Record{
			Symbol:   strings.ToUpper(row["symbol"]),
			Name:     row["name"],
			Metadata: map[string]interface{}{},
		}
		if isin := row["isin"]; isin != "" {
			rec.ISIN = &isin
		}
		if series := row["series"]; series != "" {
			rec.Exchange = &series
		}
		if industry := row["industry"]; industry != "" {
			rec.Metadata["industry"] = industry
		}

		records = append(records, rec)
	}

	stats.Parsed = len(records)
	return records, stats
}

// Deduplicate collapses records sharing a symbol, keeping the last
// occurrence. Postgres rejects a bulk upsert that touches the same key
// twice, so this must happen before batching.
func Deduplicate(records []Record) []Record {
	index := map[string]int{}
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if i, seen := index[rec.Symbol]; seen {
			out[i] = rec
			continue
		}
		index[rec.Symbol] = len(out)
		out = append(out, rec)
	}
	return out
}
