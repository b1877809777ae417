package importer

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoRows indicates the first sheet held no data rows. The run aborts
// before any upsert is attempted.
var ErrNoRows = errors.New("no rows found in sheet")

// ReadWorkbook loads the first sheet of an .xlsx workbook and returns its
// data rows as header→cell maps, using the first row as headers.
func ReadWorkbook(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	headers := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := map[string]string{}
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}
