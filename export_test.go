package main

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExportView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "view.xlsx")
	columns := buildColumnList([]string{"symbol", "start_date", "file"})
	headers := []string{"Symbol", "Start Date", "File"}
	records := []Record{
		{Symbol: "BBB", StartDate: "2024-01-01", File: "b.csv"},
		{Symbol: "AAA", StartDate: "2024-02-01", File: "a.csv"},
	}

	if err := exportView(path, columns, headers, records); err != nil {
		t.Fatalf("exportView: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	expected := [][]string{
		{"Symbol", "Start Date", "File"},
		{"BBB", "2024-01-01", "b.csv"},
		{"AAA", "2024-02-01", "a.csv"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("rows = %v, expected %v", rows, expected)
	}
}

func TestExportViewEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	columns := buildColumnList(nil)
	headers := []string{"Symbol", "Time Frame", "Start Date", "End Date", "File"}

	if err := exportView(path, columns, headers, nil); err != nil {
		t.Fatalf("exportView: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %v", rows)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	got := exportFileName("exports", now)
	expected := filepath.Join("exports", "dataset-browser-20240305-140709.xlsx")
	if got != expected {
		t.Errorf("exportFileName = %q, expected %q", got, expected)
	}
}
