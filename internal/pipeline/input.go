package pipeline

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/tabular"
)

// Logical sales-export columns and the header names they appear under.
// ERP exports and dashboard re-exports use different header vocabularies,
// so each logical column accepts several aliases.
var salesAliases = map[string][]string{
	"customer":    {"Customer", "Business Partner"},
	"rep":         {"Rep", "Sales Rep"},
	"date":        {"Date", "Date Ordered"},
	"invoice":     {"Invoice #", "Document No"},
	"sku":         {"SKU", "Search Key"},
	"description": {"Description", "Product Name"},
	"quantity":    {"Order Quantity", "Ordered Qty", "Quantity"},
	"unit_price":  {"Sales Each", "Unit Price"},
	"line_total":  {"Sales Total", "Line Amt"},
	"vendor":      {"Vendor"},
	"charge_type": {"Charge Type", "c_orderline_c_charge_id"},
	"order_ref":   {"Order", "Order No"},
	"activity":    {"Activity", "c_order_c_activity_id"},
	"address":     {"Partner Location", "Address"},
	"external_id": {"Item ID", "External ID"},
}

// Columns that must be present for a sales export to process at all.
var salesRequired = []string{
	"invoice", "sku", "description", "quantity", "unit_price", "line_total", "charge_type",
}

// headerScanLimit bounds how far down a file the header row is searched
// for; ERP exports carry up to a dozen banner rows above the real header.
const headerScanLimit = 20

// LoadSalesExport reads a sales export (CSV or XLSX) into line items. The
// header row is located by scanning for the invoice and SKU columns, which
// skips any banner rows the export tool prepends. Any required column
// missing aborts the load.
func LoadSalesExport(path, sheet string, logger logging.Logger) ([]models.LineItem, error) {
	grid, err := tabular.ReadGrid(path, sheet)
	if err != nil {
		return nil, err
	}

	headerRow := tabular.FindHeaderRow(grid, [][]string{
		salesAliases["invoice"],
		salesAliases["sku"],
	}, headerScanLimit)
	if headerRow < 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHeader, path)
	}

	header := grid[headerRow]
	columns := make(map[string]int, len(salesAliases))
	for logical, names := range salesAliases {
		columns[logical] = tabular.ColumnIndex(header, names...)
	}
	for _, logical := range salesRequired {
		if columns[logical] < 0 {
			return nil, &MissingColumnError{File: path, Column: salesAliases[logical][0]}
		}
	}

	var lines []models.LineItem
	for _, row := range grid[headerRow+1:] {
		if rowEmpty(row) {
			continue
		}
		lines = append(lines, models.LineItem{
			Customer:    tabular.Cell(row, columns["customer"]),
			Rep:         tabular.Cell(row, columns["rep"]),
			Date:        tabular.Cell(row, columns["date"]),
			InvoiceID:   tabular.Cell(row, columns["invoice"]),
			SKU:         tabular.Cell(row, columns["sku"]),
			Description: tabular.Cell(row, columns["description"]),
			Quantity:    models.ParseCurrency(tabular.Cell(row, columns["quantity"])),
			UnitPrice:   models.ParseCurrency(tabular.Cell(row, columns["unit_price"])),
			LineTotal:   models.ParseCurrency(tabular.Cell(row, columns["line_total"])),
			VendorRaw:   tabular.Cell(row, columns["vendor"]),
			ChargeType:  tabular.Cell(row, columns["charge_type"]),
			OrderRef:    tabular.Cell(row, columns["order_ref"]),
			Activity:    tabular.Cell(row, columns["activity"]),
			Address:     tabular.Cell(row, columns["address"]),
			ExternalID:  tabular.Cell(row, columns["external_id"]),
		})
	}
	if len(lines) == 0 {
		return nil, &EmptyInputError{File: path}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(lines)},
	).Info("Loaded sales export")
	return lines, nil
}

// LoadReferences reads the master reference catalog CSV. The catalog is
// the source of truth for costs, vendors, and categories, so a missing
// file or missing key columns abort the run.
func LoadReferences(path string, logger logging.Logger) ([]models.Reference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening reference file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var refs []models.Reference
	if err := gocsv.UnmarshalFile(file, &refs); err != nil {
		return nil, fmt.Errorf("error parsing reference file %s: %w", path, err)
	}
	if len(refs) == 0 {
		return nil, &EmptyInputError{File: path}
	}

	// gocsv leaves zero values for absent columns rather than failing, so
	// verify the key columns actually carried data.
	hasSKU := false
	for _, r := range refs {
		if r.SKU != "" {
			hasSKU = true
			break
		}
	}
	if !hasSKU {
		return nil, &MissingColumnError{File: path, Column: "SKU"}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(refs)},
	).Info("Loaded master reference catalog")
	return refs, nil
}

// LoadIDMappings reads an external-ID-to-SKU mapping file (CSV or XLSX).
// The file carries an external ID column and a SKU column; extra columns
// are ignored. Blank or duplicate IDs are skipped, first mapping wins.
func LoadIDMappings(path, sheet string, logger logging.Logger) (map[string]string, error) {
	grid, err := tabular.ReadGrid(path, sheet)
	if err != nil {
		return nil, err
	}

	idNames := salesAliases["external_id"]
	skuNames := salesAliases["sku"]
	headerRow := tabular.FindHeaderRow(grid, [][]string{idNames, skuNames}, headerScanLimit)
	if headerRow < 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHeader, path)
	}
	idCol := tabular.ColumnIndex(grid[headerRow], idNames...)
	skuCol := tabular.ColumnIndex(grid[headerRow], skuNames...)

	mapping := make(map[string]string)
	for _, row := range grid[headerRow+1:] {
		id := tabular.Cell(row, idCol)
		sku := tabular.Cell(row, skuCol)
		if id == "" || sku == "" {
			continue
		}
		if _, ok := mapping[id]; ok {
			continue
		}
		mapping[id] = sku
	}
	if len(mapping) == 0 {
		return nil, &EmptyInputError{File: path}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(mapping)},
	).Info("Loaded external ID mappings")
	return mapping, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
