package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is one table: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Write renders sheets into one .xlsx workbook, in order, with a bold header row.
func Write(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving an empty "Sheet1".
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	for col, header := range sheet.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	if len(sheet.Headers) > 0 {
		headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err == nil {
			last, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
			_ = f.SetCellStyle(sheet.Name, "A1", last, headerStyle)
		}
	}

	for i, row := range sheet.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			// Explicit strings keep ids such as "01FC05" from being read back as numbers.
			if err := f.SetCellStr(sheet.Name, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet.Name, cell, err)
			}
		}
	}
	return nil
}

// ReadSheet returns the data rows of the named sheet, header row excluded.
// Every row is padded to width columns so short rows index safely.
func ReadSheet(r io.Reader, name string, width int) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	if len(rows) <= 1 {
		return [][]string{}, nil
	}

	out := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		padded := make([]string, width)
		copy(padded, row)
		out = append(out, padded)
	}
	return out, nil
}
