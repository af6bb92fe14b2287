package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"tonkho/internal/domain/materials"
)

func TestBuildImportTemplate(t *testing.T) {
	buf, err := BuildImportTemplate()
	if err != nil {
		t.Fatalf("build template: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen template: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(TemplateSheet)
	if err != nil {
		t.Fatalf("sheet %s missing: %v", TemplateSheet, err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 sample rows, got %d rows", len(rows))
	}
	if rows[0][0] != "ma_hang" || rows[0][1] != "so_luong" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "N-K55-3318" || rows[1][1] != "10" {
		t.Errorf("unexpected first sample row: %v", rows[1])
	}
}

func TestBuildMaterialsExport(t *testing.T) {
	items := []materials.Material{
		*materials.New("K55", "G-K55-3313", "Gioăng kính", "Cây", "Đen", decimal.Zero, decimal.Zero),
		*materials.New("K55", "N-K55-3318", "Nẹp kính", "Cây", "Trắng", decimal.Zero, decimal.Zero),
	}

	buf, err := BuildMaterialsExport(items)
	if err != nil {
		t.Fatalf("build export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen export: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(MaterialsSheet)
	if err != nil {
		t.Fatalf("sheet %s missing: %v", MaterialsSheet, err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"he_nhom", "ma_hang", "ten_hang", "mau", "don_vi"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d]: want %q, got %q", i, col, rows[0][i])
		}
	}
	if rows[1][1] != "G-K55-3313" || rows[1][3] != "Đen" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestParseImport_Roundtrip(t *testing.T) {
	buf, err := BuildImportTemplate()
	if err != nil {
		t.Fatalf("build template: %v", err)
	}

	rows, err := ParseImport(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(rows))
	}
	if rows[0].Row != 2 || rows[0].Code != "N-K55-3318" || rows[0].Qty != "10" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Row != 3 || rows[1].Code != "G-K55-3313" || rows[1].Qty != "5" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestParseImport_ExtraColumnsAndShortRows(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	// Reordered header with an extra column; column lookup is by name.
	_ = f.SetSheetRow(sheet, "A1", &[]any{"note", "So_Luong", "ma_hang"})
	_ = f.SetSheetRow(sheet, "A2", &[]any{"x", 10, "N-K55-3318"})
	// Short row: excelize trims trailing empty cells.
	_ = f.SetSheetRow(sheet, "A3", &[]any{"y"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	rows, err := ParseImport(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(rows))
	}
	if rows[0].Code != "N-K55-3318" || rows[0].Qty != "10" {
		t.Errorf("column lookup by name failed: %+v", rows[0])
	}
	if rows[1].Code != "" || rows[1].Qty != "" {
		t.Errorf("short row must yield empty cells: %+v", rows[1])
	}
}

func TestParseImport_Errors(t *testing.T) {
	t.Run("not a workbook", func(t *testing.T) {
		if _, err := ParseImport(strings.NewReader("this is not xlsx")); err == nil {
			t.Error("expected error for non-xlsx input")
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		f := excelize.NewFile()
		defer func() { _ = f.Close() }()
		sheet := f.GetSheetName(f.GetActiveSheetIndex())
		_ = f.SetSheetRow(sheet, "A1", &[]any{"code", "amount"})
		_ = f.SetSheetRow(sheet, "A2", &[]any{"N-K55-3318", 10})

		buf, err := f.WriteToBuffer()
		if err != nil {
			t.Fatalf("write workbook: %v", err)
		}
		if _, err := ParseImport(bytes.NewReader(buf.Bytes())); err == nil {
			t.Error("expected error for missing header columns")
		}
	})

	t.Run("no data rows", func(t *testing.T) {
		f := excelize.NewFile()
		defer func() { _ = f.Close() }()
		sheet := f.GetSheetName(f.GetActiveSheetIndex())
		_ = f.SetSheetRow(sheet, "A1", &[]any{"ma_hang", "so_luong"})

		buf, err := f.WriteToBuffer()
		if err != nil {
			t.Fatalf("write workbook: %v", err)
		}
		if _, err := ParseImport(bytes.NewReader(buf.Bytes())); err == nil {
			t.Error("expected error for header-only workbook")
		}
	})
}
