package importer

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("canonical_record", func(t *testing.T) {
		rows := []map[string]string{
			{"Symbol": "TCS", "Company Name": "Tata Consultancy"},
		}
		records, stats := Normalize(rows)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		rec := records[0]
		if rec.Symbol != "TCS" {
			t.Errorf("expected symbol TCS, got %q", rec.Symbol)
		}
		if rec.Name != "Tata Consultancy" {
			t.Errorf("expected name Tata Consultancy, got %q", rec.Name)
		}
		if rec.ISIN != nil {
			t.Errorf("expected nil ISIN, got %v", *rec.ISIN)
		}
		if rec.Exchange != nil {
			t.Errorf("expected nil exchange, got %v", *rec.Exchange)
		}
		if len(rec.Metadata) != 0 {
			t.Errorf("expected empty metadata, got %v", rec.Metadata)
		}
		if stats.Parsed != 1 || stats.MissingSymbol != 0 || stats.MissingName != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("header_spellings", func(t *testing.T) {
		rows := []map[string]string{
			{"SC_CODE": "500325", "Name of Company": "Reliance Industries", "ISIN NUMBER": "INE002A01018"},
			{" Scrip Code ": "532540", "ISSUER NAME": "TCS Ltd", "isin code": "INE467B01029"},
			{"tradingsymbol": "infy", "Security Name": "Infosys", "Industry Type": "IT"},
		}
		records, _ := Normalize(rows)

		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Symbol != "500325" || records[0].ISIN == nil || *records[0].ISIN != "INE002A01018" {
			t.Errorf("unexpected first record: %+v", records[0])
		}
		if records[1].Symbol != "532540" || records[1].Name != "TCS Ltd" {
			t.Errorf("unexpected second record: %+v", records[1])
		}
		if records[2].Symbol != "INFY" {
			t.Errorf("expected uppercased symbol, got %q", records[2].Symbol)
		}
		if records[2].Metadata["industry"] != "IT" {
			t.Errorf("expected industry in metadata, got %v", records[2].Metadata)
		}
	})

	t.Run("unknown_headers_ignored", func(t *testing.T) {
		rows := []map[string]string{
			{"Symbol": "TCS", "Company Name": "Tata Consultancy", "FACE VALUE": "1", "PAID UP VALUE": "1"},
		}
		records, _ := Normalize(rows)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if len(records[0].Metadata) != 0 {
			t.Errorf("expected unknown columns dropped, got metadata %v", records[0].Metadata)
		}
	})

	t.Run("whitespace_values_treated_absent", func(t *testing.T) {
		rows := []map[string]string{
			{"Symbol": "  TCS  ", "Company Name": "   "},
		}
		records, stats := Normalize(rows)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Symbol != "TCS" {
			t.Errorf("expected trimmed symbol, got %q", records[0].Symbol)
		}
		if records[0].Name != "" {
			t.Errorf("expected empty name, got %q", records[0].Name)
		}
		if stats.MissingName != 1 {
			t.Errorf("expected 1 missing name, got %d", stats.MissingName)
		}
	})

	t.Run("rows_without_symbol_and_name_dropped", func(t *testing.T) {
		rows := []map[string]string{
			{"Symbol": "", "Company Name": ""},
			{"ISIN": "INE002A01018"},
			{"Symbol": "TCS"},
			{"Company Name": "Mystery Corp"},
		}
		records, stats := Normalize(rows)

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if stats.Parsed != 2 {
			t.Errorf("expected 2 parsed, got %d", stats.Parsed)
		}
		if stats.MissingSymbol != 1 {
			t.Errorf("expected 1 missing symbol, got %d", stats.MissingSymbol)
		}
		if stats.MissingName != 1 {
			t.Errorf("expected 1 missing name, got %d", stats.MissingName)
		}
	})

	t.Run("series_becomes_exchange", func(t *testing.T) {
		rows := []map[string]string{
			{"Symbol": "TCS", "Company Name": "Tata Consultancy", "Series": "EQ"},
		}
		records, _ := Normalize(rows)

		if records[0].Exchange == nil || *records[0].Exchange != "EQ" {
			t.Errorf("expected exchange EQ, got %+v", records[0].Exchange)
		}
	})
}

func TestDeduplicate(t *testing.T) {
	t.Run("last_occurrence_wins", func(t *testing.T) {
		records := []Record{
			{Symbol: "TCS", Name: "Old Name"},
			{Symbol: "INFY", Name: "Infosys"},
			{Symbol: "TCS", Name: "Tata Consultancy Services"},
		}
		out := Deduplicate(records)

		if len(out) != 2 {
			t.Fatalf("expected 2 records, got %d", len(out))
		}
		if out[0].Symbol != "TCS" || out[0].Name != "Tata Consultancy Services" {
			t.Errorf("expected last TCS row to win in place, got %+v", out[0])
		}
		if out[1].Symbol != "INFY" {
			t.Errorf("expected INFY second, got %+v", out[1])
		}
	})

	t.Run("no_duplicates", func(t *testing.T) {
		records := []Record{
			{Symbol: "TCS", Name: "Tata Consultancy Services"},
			{Symbol: "INFY", Name: "Infosys"},
		}
		out := Deduplicate(records)

		if len(out) != 2 {
			t.Fatalf("expected 2 records, got %d", len(out))
		}
	})
}
