package barista

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Table is a plain tabular result: a header and uniform rows of cells.
// Reports are exposed in this shape so any serializer can consume them
// without reaching back into the core.
type Table struct {
	Header []string
	Rows   [][]string
}

// Table returns the per-drink breakdown of the summary as a plain table,
// one row per drink plus a trailing totals row.
func (s *SalesSummary) Table() Table {
	t := Table{Header: []string{"Drink", "Quantity", "Revenue", "Cost", "Profit"}}
	for _, g := range s.Breakdown {
		t.Rows = append(t.Rows, []string{
			g.Drink,
			strconv.Itoa(g.Quantity),
			g.Revenue.Text(),
			g.Cost.Text(),
			g.Profit.Text(),
		})
	}
	t.Rows = append(t.Rows, []string{
		"Total", "", s.Revenue.Text(), s.Cost.Text(), s.Profit.Text(),
	})
	return t
}

// Table returns the daily summary as a plain table, one row per drink sold.
func (s *DailySummary) Table() Table {
	t := Table{Header: []string{"Drink", "Quantity"}}
	for _, drink := range slices.Sorted(maps.Keys(s.PerDrink)) {
		t.Rows = append(t.Rows, []string{drink, strconv.Itoa(s.PerDrink[drink])})
	}
	return t
}

// ExportCSV serializes a table as CSV bytes, suitable for download or
// writing to a file.
func ExportCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("export error: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export error: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export error: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX serializes a table as a single-sheet XLSX workbook.
func ExportXLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export error: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("export error: %w", err)
		}
	}
	for i, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("export error: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("export error: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export error: %w", err)
	}
	return buf.Bytes(), nil
}
