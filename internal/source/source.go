// Package source reads the external inputs of a sync run: the legacy
// UH reporting database and the interim spreadsheets.
package source

import "context"

// Row is one spreadsheet row keyed by the header cells of row 1.
// Lookups for columns a tab does not carry yield "".
type Row map[string]string

// RowSource returns the rows of one spreadsheet tab. rangeSpec uses the
// "Tab Name!A1:Z100" convention; row 1 holds the field names.
type RowSource interface {
	ReadRange(ctx context.Context, spreadsheetID, rangeSpec string) ([]Row, error)
}

// AssetSummary is one asset known to the legacy system, used to resolve
// a tenure's property reference to its canonical address and UPRN.
type AssetSummary struct {
	PropRef     string
	UPRN        string
	FullAddress string
	AssetType   string
}

// rowsFromValues converts a raw cell grid into header-keyed rows.
func rowsFromValues(values [][]string) []Row {
	if len(values) == 0 {
		return nil
	}
	header := values[0]
	rows := make([]Row, 0, len(values)-1)
	for _, cells := range values[1:] {
		row := make(Row, len(header))
		for i, cell := range cells {
			if i >= len(header) {
				break
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows
}
