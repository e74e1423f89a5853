package comparator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"source4/dash-etl/internal/logging"
)

func rec(invoice, sku string, fields map[string]string) Record {
	if fields == nil {
		fields = map[string]string{}
	}
	return Record{InvoiceID: invoice, SKU: sku, Fields: fields}
}

func TestRecordKey(t *testing.T) {
	assert.Equal(t, "INV-1_ABC", rec("INV-1", "ABC", nil).Key())
	// Blank SKUs get a placeholder so two SKU-less lines on the same
	// invoice still collide onto one key, matching the workbook behavior.
	assert.Equal(t, "INV-1_NaN", rec("INV-1", "", nil).Key())
	assert.Equal(t, "INV-1_NaN", rec("INV-1", "  ", nil).Key())
}

func TestCompareSelfIsClean(t *testing.T) {
	records := []Record{
		rec("INV-1", "A", map[string]string{"Order Quantity": "2", "Sales Total": "100.00"}),
		rec("INV-1", "B", map[string]string{"Order Quantity": "1", "Sales Total": "50.00"}),
		rec("INV-2", "", map[string]string{"Order Quantity": "", "Sales Total": ""}),
	}

	c := New(Options{Fields: []string{"Order Quantity", "Sales Total"}}, logging.NewMockLogger())
	report := c.Compare(records, records)

	assert.True(t, report.Clean())
	assert.Equal(t, 3, report.MatchedKeys)
	assert.Zero(t, report.ExtraCount)
	assert.Zero(t, report.MissingCount)
	assert.Zero(t, report.MismatchCount)
}

func TestCompareExtraAndMissing(t *testing.T) {
	output := []Record{
		rec("INV-1", "A", nil),
		rec("INV-1", "B", nil),
	}
	reference := []Record{
		rec("INV-1", "A", nil),
		rec("INV-2", "C", nil),
	}

	c := New(Options{Fields: nil}, logging.NewMockLogger())
	report := c.Compare(output, reference)

	assert.False(t, report.Clean())
	assert.Equal(t, 1, report.MatchedKeys)
	assert.Equal(t, 1, report.ExtraCount)
	assert.Equal(t, []string{"INV-1_B"}, report.ExtraSample)
	assert.Equal(t, 1, report.MissingCount)
	assert.Equal(t, []string{"INV-2_C"}, report.MissingSample)
}

func TestCompareFieldMismatch(t *testing.T) {
	output := []Record{
		rec("INV-1", "A", map[string]string{"Order Quantity": "2", "Sales Total": "100.00"}),
	}
	reference := []Record{
		rec("INV-1", "A", map[string]string{"Order Quantity": "3", "Sales Total": "100.00"}),
	}

	c := New(Options{Fields: []string{"Order Quantity", "Sales Total"}}, logging.NewMockLogger())
	report := c.Compare(output, reference)

	assert.Equal(t, 1, report.MatchedKeys)
	require.Equal(t, 1, report.MismatchCount)
	m := report.MismatchSample[0]
	assert.Equal(t, "INV-1_A", m.Key)
	assert.Equal(t, "Order Quantity", m.Field)
	assert.Equal(t, "2", m.Output)
	assert.Equal(t, "3", m.Reference)
}

func TestCompareNumericTolerance(t *testing.T) {
	output := []Record{
		rec("INV-1", "A", map[string]string{"ROI": "0.6666667", "Sales Total": "$1,234.56"}),
	}
	reference := []Record{
		rec("INV-1", "A", map[string]string{"ROI": "0.6666668", "Sales Total": "1234.56"}),
	}

	c := New(Options{Fields: []string{"ROI", "Sales Total"}}, logging.NewMockLogger())
	report := c.Compare(output, reference)
	assert.True(t, report.Clean(), "formatting-only differences should compare equal")
}

func TestCompareNullHandling(t *testing.T) {
	output := []Record{
		rec("INV-1", "A", map[string]string{"Cost Total": ""}),
		rec("INV-1", "B", map[string]string{"Cost Total": "10"}),
	}
	reference := []Record{
		rec("INV-1", "A", map[string]string{"Cost Total": "NaN"}),
		rec("INV-1", "B", map[string]string{"Cost Total": ""}),
	}

	c := New(Options{Fields: []string{"Cost Total"}}, logging.NewMockLogger())
	report := c.Compare(output, reference)

	// Blank and NaN both mean null and match; value vs null does not.
	assert.Equal(t, 1, report.MismatchCount)
	assert.Equal(t, "B", report.MismatchSample[0].Key[len("INV-1_"):])
}

func TestCompareDuplicateKeysFirstWins(t *testing.T) {
	output := []Record{
		rec("INV-1", "A", map[string]string{"Order Quantity": "1"}),
		rec("INV-1", "A", map[string]string{"Order Quantity": "9"}),
	}
	reference := []Record{
		rec("INV-1", "A", map[string]string{"Order Quantity": "1"}),
	}

	c := New(Options{Fields: []string{"Order Quantity"}}, logging.NewMockLogger())
	report := c.Compare(output, reference)

	assert.Equal(t, 1, report.MatchedKeys)
	assert.Zero(t, report.MismatchCount)
}

func TestCompareSampleLimit(t *testing.T) {
	var output []Record
	for i := 0; i < 25; i++ {
		output = append(output, rec("INV-1", fmt.Sprintf("SKU-%02d", i), nil))
	}

	c := New(Options{SampleLimit: 10}, logging.NewMockLogger())
	report := c.Compare(output, nil)

	assert.Equal(t, 25, report.ExtraCount)
	assert.Len(t, report.ExtraSample, 10)
}

func TestRecordsFromGrid(t *testing.T) {
	grid := [][]string{
		{"Sales Export", "", ""},
		{"Generated 2025-09-01", "", ""},
		{"Invoice #", "SKU", "Sales Total"},
		{"INV-1", "A", "100.00"},
		{"INV-2", "", "25.00"},
		{"", "", ""},
	}

	records, err := RecordsFromGrid(grid, "test.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "INV-1_A", records[0].Key())
	assert.Equal(t, "100.00", records[0].Fields["Sales Total"])
	assert.Equal(t, "INV-2_NaN", records[1].Key())
}

func TestRecordsFromGridNoHeader(t *testing.T) {
	grid := [][]string{{"just", "random", "cells"}}
	_, err := RecordsFromGrid(grid, "test.csv")
	assert.Error(t, err)
}
