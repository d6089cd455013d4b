package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteFile creates a new .xlsx file from the given workbook data. Sheets are
// written in order; the library's default "Sheet1" is renamed into the first
// sheet so no blank sheet remains. Nothing touches the destination path until
// the whole workbook is assembled, so a failed write leaves no partial file.
func WriteFile(wb *Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets — nothing to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}

	seen := make(map[string]bool)

	for i, sheet := range wb.Sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}

		// excelize silently reuses an existing sheet on NewSheet, which
		// would merge two floors into one tab. Refuse instead.
		if seen[name] {
			return fmt.Errorf("duplicate sheet name %q — two floor names normalize to the same sheet title", name)
		}
		seen[name] = true

		if i == 0 {
			defaultSheet := f.GetSheetName(0)
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("could not rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("could not create sheet %q: %w", name, err)
			}
		}

		rowOffset := 0
		if len(sheet.Header) > 0 {
			if err := writeRow(f, name, 1, sheet.Header); err != nil {
				return err
			}
			last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
			if err != nil {
				return fmt.Errorf("invalid header width: %w", err)
			}
			if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
				return fmt.Errorf("could not style header on %q: %w", name, err)
			}
			if err := freezeHeaderRow(f, name); err != nil {
				return err
			}
			rowOffset = 1
		}

		for r, row := range sheet.Rows {
			if err := writeRow(f, name, rowOffset+r+1, row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, cells []string) error {
	for colIdx, cell := range cells {
		cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, cell); err != nil {
			return fmt.Errorf("could not set cell %s on %q: %w", cellName, sheet, err)
		}
	}
	return nil
}

// freezeHeaderRow pins row 1 so the header stays visible when scrolling.
func freezeHeaderRow(f *excelize.File, sheet string) error {
	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("could not freeze header row on %q: %w", sheet, err)
	}
	return nil
}
