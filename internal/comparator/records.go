package comparator

import (
	"fmt"

	"source4/dash-etl/internal/tabular"
)

// Key column aliases for reconciliation inputs. Either side of a
// comparison may be a pipeline CSV or a dashboard workbook export.
var (
	invoiceAliases = []string{"Invoice #", "Document No", "Invoice"}
	skuAliases     = []string{"SKU", "Search Key"}
)

// LoadRecords reads a CSV or XLSX file into comparison records. Every
// column becomes a field keyed by its header name; the invoice and SKU
// columns additionally form the composite record key.
func LoadRecords(path, sheet string) ([]Record, error) {
	grid, err := tabular.ReadGrid(path, sheet)
	if err != nil {
		return nil, err
	}
	return RecordsFromGrid(grid, path)
}

// RecordsFromGrid converts a cell grid into records. name is used in error
// messages only.
func RecordsFromGrid(grid [][]string, name string) ([]Record, error) {
	headerRow := tabular.FindHeaderRow(grid, [][]string{invoiceAliases, skuAliases}, 20)
	if headerRow < 0 {
		return nil, fmt.Errorf("no invoice/SKU header row found in %s", name)
	}

	header := grid[headerRow]
	invoiceCol := tabular.ColumnIndex(header, invoiceAliases...)
	skuCol := tabular.ColumnIndex(header, skuAliases...)

	var records []Record
	for _, row := range grid[headerRow+1:] {
		if emptyRow(row) {
			continue
		}
		rec := Record{
			InvoiceID: tabular.Cell(row, invoiceCol),
			SKU:       tabular.Cell(row, skuCol),
			Fields:    make(map[string]string, len(header)),
		}
		for i, h := range header {
			if h == "" {
				continue
			}
			rec.Fields[h] = tabular.Cell(row, i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
