// Package xlsx builds and parses the spreadsheet files the API serves:
// the stock-in import template, the catalog export, and uploaded
// import files.
package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"tonkho/internal/domain/importing"
	"tonkho/internal/domain/materials"
)

const (
	TemplateSheet  = "NhapKho"
	MaterialsSheet = "DanhMucMaNhom"

	TemplateFilename  = "Template_NhapKho.xlsx"
	MaterialsFilename = "DanhMuc_MaNhom.xlsx"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	colCode = "ma_hang"
	colQty  = "so_luong"
)

// BuildImportTemplate produces the stock-in template workbook with the
// expected header and two sample rows.
func BuildImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, TemplateSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]any{
		{colCode, colQty},
		{"N-K55-3318", 10},
		{"G-K55-3313", 5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(TemplateSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f.WriteToBuffer()
}

// BuildMaterialsExport produces the catalog export workbook. Items are
// expected in (he_nhom, ma_hang) order, as the repository returns them.
func BuildMaterialsExport(items []materials.Material) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, MaterialsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"he_nhom", "ma_hang", "ten_hang", "mau", "don_vi"}
	if err := f.SetSheetRow(MaterialsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, m := range items {
		row := []any{m.Group, m.Code, m.Name, m.Color, m.Unit}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(MaterialsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}

// ParseImport reads an uploaded stock-in workbook and returns its data
// rows. The header row must contain the ma_hang and so_luong columns;
// their positions are located by name so extra columns are tolerated.
func ParseImport(r io.Reader) ([]importing.MovementRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheet)
	}

	codeIdx, qtyIdx := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colCode:
			codeIdx = i
		case colQty:
			qtyIdx = i
		}
	}
	if codeIdx < 0 || qtyIdx < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns", colCode, colQty)
	}

	out := make([]importing.MovementRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, importing.MovementRow{
			Row:  i + 2, // sheet row; header is row 1
			Code: cellAt(row, codeIdx),
			Qty:  cellAt(row, qtyIdx),
		})
	}

	return out, nil
}

// cellAt returns the cell value or empty string for short rows
// (excelize trims trailing empty cells).
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
