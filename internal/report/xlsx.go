package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SheetName       = "Audit Report"
)

var columnWidths = []float64{22, 18, 30, 10, 12, 11, 11, 11, 12, 16, 15, 30}

// WriteXLSX renders the report into a single-sheet workbook. Numbers are
// stored as numeric cells rounded to the same places as the CSV export.
func WriteXLSX(w io.Writer, d Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return fmt.Errorf("failed to locate sheet: %w", err)
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create section style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	styles := map[rowKind]int{rowTitle: titleStyle, rowSection: sectionStyle, rowHeader: headerStyle}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, r := range d.rows() {
		line := i + 1
		for j, field := range r.fields {
			cell, err := excelize.CoordinatesToCellName(j+1, line)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, cellValue(field)); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
			if style, ok := styles[r.kind]; ok {
				if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
					return fmt.Errorf("failed to set style on %s: %w", cell, err)
				}
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case Fixed:
		return x.Rounded()
	}
	return v
}

func SerializeXLSX(d Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
