package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/taxonomy"
)

// QC workbook sheet names, in tab order.
const (
	SheetReady          = "READY TO IMPORT"
	SheetMissingCosts   = "MISSING COSTS"
	SheetMissingOverall = "MISSING OVERALL CAT"
	SheetMissingProdCat = "MISSING PROD CAT MAIN"
	SheetHighMargin     = "HIGH MARGIN ALERT"
	SheetNegZeroMargin  = "NEG ZERO MARGIN"
	SheetReviewQueue    = "REVIEW QUEUE"
)

// WriteEnrichedCSV writes the enriched record set to path, creating parent
// directories as needed.
func WriteEnrichedCSV(lines []models.LineItem, path string, logger logging.Logger) error {
	if err := writeCSV(&lines, path); err != nil {
		return err
	}
	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(lines)},
	).Info("Wrote enriched output")
	return nil
}

// WriteReviewCSV writes the category review queue to path.
func WriteReviewCSV(rows []models.ReviewRow, path string, logger logging.Logger) error {
	if err := writeCSV(&rows, path); err != nil {
		return err
	}
	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Wrote review queue")
	return nil
}

func writeCSV(records interface{}, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := gocsv.MarshalFile(records, file); err != nil {
		return fmt.Errorf("error writing CSV file %s: %w", path, err)
	}
	return nil
}

// WriteQCWorkbook writes the multi-sheet quality-control workbook: the full
// enriched set plus exception views for missing costs, missing categories,
// margin outliers, and the review queue.
func WriteQCWorkbook(lines []models.LineItem, review []models.ReviewRow, tax *taxonomy.Taxonomy, highROI float64, path string, logger logging.Logger) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeLineSheet(f, SheetReady, lines); err != nil {
		return err
	}

	missingCosts := filterLines(lines, func(li models.LineItem) bool {
		return !li.CostEach.Valid
	})
	sortByVendor(missingCosts)
	if err := writeLineSheet(f, SheetMissingCosts, missingCosts); err != nil {
		return err
	}

	missingOverall := filterLines(lines, func(li models.LineItem) bool {
		return blankCategory(li.OverallCategory)
	})
	if err := writeLineSheet(f, SheetMissingOverall, missingOverall); err != nil {
		return err
	}

	// Missing product category matters most for the primary vendor lines;
	// long-tail vendors are triaged through the review queue instead.
	missingProdCat := filterLines(lines, func(li models.LineItem) bool {
		return tax.IsMainVendor(li.Vendor) && blankCategory(li.ProductCategory)
	})
	if err := writeLineSheet(f, SheetMissingProdCat, missingProdCat); err != nil {
		return err
	}

	threshold := models.AmountFromFloat(highROI)
	highMargin := filterLines(lines, func(li models.LineItem) bool {
		return li.ROI.Valid && li.ROI.Decimal.GreaterThan(threshold.Decimal)
	})
	sortByROI(highMargin, true)
	if err := writeLineSheet(f, SheetHighMargin, highMargin); err != nil {
		return err
	}

	negZero := filterLines(lines, func(li models.LineItem) bool {
		return li.ROI.Valid && !li.ROI.Decimal.IsPositive()
	})
	sortByROI(negZero, false)
	if err := writeLineSheet(f, SheetNegZeroMargin, negZero); err != nil {
		return err
	}

	if err := writeReviewSheet(f, review); err != nil {
		return err
	}

	// excelize starts every workbook with a default Sheet1.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error arranging workbook sheets: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error writing workbook %s: %w", path, err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(lines)},
	).Info("Wrote QC workbook")
	return nil
}

// lineHeader is the enriched output column order, shared by the CSV tags on
// LineItem and the workbook sheets.
var lineHeader = []interface{}{
	"Customer", "Rep", "Online / In Person", "Date", "Invoice #", "SKU",
	"Description", "Order Quantity", "Sales Each", "Sales Total",
	"Cost Each", "Cost Total", "Vendor", "Orders", "Shipping", "Discount",
	"Invoice Total", "Profit Total", "ROI", "Product Category",
	"Overall Product Category", "State", "Region", "Tracked Month",
}

func lineCells(li models.LineItem) []interface{} {
	return []interface{}{
		li.Customer, li.Rep, li.OrderType, li.Date, li.InvoiceID, li.SKU,
		li.Description, amountCell(li.Quantity), amountCell(li.UnitPrice),
		amountCell(li.LineTotal), amountCell(li.CostEach),
		amountCell(li.CostTotal), li.Vendor, amountCell(li.OrderShare),
		amountCell(li.ShippingAllocated), amountCell(li.DiscountAllocated),
		amountCell(li.InvoiceTotal), amountCell(li.ProfitTotal),
		amountCell(li.ROI), li.ProductCategory, li.OverallCategory,
		li.State, li.Region, li.TrackedMonth,
	}
}

// amountCell maps a null amount to an empty workbook cell so spreadsheet
// formulas skip it instead of treating it as zero.
func amountCell(a models.Amount) interface{} {
	if !a.Valid {
		return nil
	}
	v, _ := a.Decimal.Float64()
	return v
}

func writeLineSheet(f *excelize.File, name string, lines []models.LineItem) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("error creating sheet %q: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &lineHeader); err != nil {
		return fmt.Errorf("error writing sheet %q: %w", name, err)
	}
	for i, li := range lines {
		cells := lineCells(li)
		axis, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, axis, &cells); err != nil {
			return fmt.Errorf("error writing sheet %q: %w", name, err)
		}
	}
	return nil
}

func writeReviewSheet(f *excelize.File, review []models.ReviewRow) error {
	if _, err := f.NewSheet(SheetReviewQueue); err != nil {
		return fmt.Errorf("error creating sheet %q: %w", SheetReviewQueue, err)
	}
	header := []interface{}{"SKU", "Product Name", "Vendor", "Invoice #", "Suggested Category", "Confidence %", "Source"}
	if err := f.SetSheetRow(SheetReviewQueue, "A1", &header); err != nil {
		return fmt.Errorf("error writing sheet %q: %w", SheetReviewQueue, err)
	}
	for i, row := range review {
		cells := []interface{}{row.SKU, row.ProductName, row.Vendor, row.InvoiceID, row.SuggestedCategory, row.Confidence, row.Source}
		axis, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetReviewQueue, axis, &cells); err != nil {
			return fmt.Errorf("error writing sheet %q: %w", SheetReviewQueue, err)
		}
	}
	return nil
}

func filterLines(lines []models.LineItem, keep func(models.LineItem) bool) []models.LineItem {
	var out []models.LineItem
	for _, li := range lines {
		if keep(li) {
			out = append(out, li)
		}
	}
	return out
}

func blankCategory(cat string) bool {
	return cat == "" || cat == models.CategoryBlank
}

func sortByVendor(lines []models.LineItem) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Vendor != lines[j].Vendor {
			return lines[i].Vendor < lines[j].Vendor
		}
		return lines[i].Description < lines[j].Description
	})
}

func sortByROI(lines []models.LineItem, descending bool) {
	sort.SliceStable(lines, func(i, j int) bool {
		less := lines[i].ROI.Decimal.LessThan(lines[j].ROI.Decimal)
		if descending {
			return !less && !lines[i].ROI.Decimal.Equal(lines[j].ROI.Decimal)
		}
		return less
	})
}
