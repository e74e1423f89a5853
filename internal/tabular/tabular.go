// Package tabular reads CSV and XLSX files into a uniform grid of cells so
// the rest of the pipeline does not care which format an export arrived in.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the file at path into rows of cells. The format is chosen
// by extension: .xlsx/.xlsm open as a workbook (sheet selects which sheet,
// "" means the first), anything else parses as CSV. A missing file is a
// file-level error that aborts the run.
func ReadGrid(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheet)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow variable number of fields

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing CSV file %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// FindHeaderRow scans the leading rows of a grid for the header row: the
// first row containing all the given markers (case-insensitive cell
// match). Exports often carry title banners above the real header, so the
// scan covers the first maxScan rows. Returns -1 when no header is found.
func FindHeaderRow(grid [][]string, markers [][]string, maxScan int) int {
	if maxScan <= 0 || maxScan > len(grid) {
		maxScan = len(grid)
	}

	for i := 0; i < maxScan; i++ {
		if rowHasAll(grid[i], markers) {
			return i
		}
	}
	return -1
}

// rowHasAll reports whether the row contains, for every marker group, at
// least one of the group's alternative names.
func rowHasAll(row []string, markers [][]string) bool {
	for _, alternatives := range markers {
		found := false
		for _, cell := range row {
			for _, name := range alternatives {
				if strings.EqualFold(strings.TrimSpace(cell), name) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ColumnIndex finds the index of the first column whose header matches any
// of the given names, case-insensitively. Returns -1 when absent.
func ColumnIndex(header []string, names ...string) int {
	for i, cell := range header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(cell), name) {
				return i
			}
		}
	}
	return -1
}

// Cell returns the row's cell at index, or "" when the row is short or the
// index is -1. Ragged rows are common in hand-edited exports.
func Cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
