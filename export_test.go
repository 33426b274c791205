package barista

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func summaryTable() Table {
	l := twoDayLedger()
	return l.SalesSummary(MustDate("2024-01-01")).Table()
}

func TestSalesSummary_Table(t *testing.T) {
	table := summaryTable()

	wantHeader := []string{"Drink", "Quantity", "Revenue", "Cost", "Profit"}
	if len(table.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", table.Header, wantHeader)
	}
	for i, name := range wantHeader {
		if table.Header[i] != name {
			t.Errorf("header[%d] = %q, want %q", i, table.Header[i], name)
		}
	}

	// Two drinks and a totals row.
	if len(table.Rows) != 3 {
		t.Fatalf("table has %d rows, want 3", len(table.Rows))
	}
	if table.Rows[0][0] != "Latte" || table.Rows[0][1] != "2" {
		t.Errorf("first row = %v", table.Rows[0])
	}
	total := table.Rows[2]
	if total[0] != "Total" || total[2] != "12.50" || total[4] != "9.00" {
		t.Errorf("totals row = %v", total)
	}
}

func TestExportCSV(t *testing.T) {
	data, err := ExportCSV(summaryTable())
	if err != nil {
		t.Fatalf("ExportCSV() returned an unexpected error: %v", err)
	}

	want := "Drink,Quantity,Revenue,Cost,Profit\n" +
		"Latte,2,8.00,2.00,6.00\n" +
		"Mocha,1,4.50,1.50,3.00\n" +
		"Total,,12.50,3.50,9.00\n"
	if string(data) != want {
		t.Errorf("exported CSV:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestExportXLSX(t *testing.T) {
	data, err := ExportXLSX(summaryTable())
	if err != nil {
		t.Fatalf("ExportXLSX() returned an unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Drink"},
		{"E1", "Profit"},
		{"A2", "Latte"},
		{"B2", "2"},
		{"C4", "12.50"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Sheet1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestDailySummary_Table(t *testing.T) {
	l := twoDayLedger()
	table := l.DailySummary(MustDate("2024-01-01")).Table()

	if len(table.Rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(table.Rows))
	}
	// Rows are ordered by drink name.
	if table.Rows[0][0] != "Latte" || table.Rows[1][0] != "Mocha" {
		t.Errorf("rows = %v", table.Rows)
	}
}
