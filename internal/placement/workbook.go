package placement

import (
	"fmt"

	"github.com/klytics/apsheet/internal/formats/xlsx"
	"github.com/klytics/apsheet/internal/openintent"
)

// BuildWorkbook assembles one sheet per floor group, in discovery order.
// The placement counter starts at 1 and runs across the whole document — it
// is never reset at a floor boundary.
func BuildWorkbook(groups []openintent.FloorGroup, d Defaults) (*xlsx.Workbook, error) {
	wb := &xlsx.Workbook{}
	n := 1

	for _, g := range groups {
		sheet := xlsx.Sheet{
			Name:   SheetName(g.Name),
			Header: Header,
		}

		for _, ap := range g.APs {
			row, err := BuildRow(ap, n, d)
			if err != nil {
				return nil, fmt.Errorf("floor %q: %w", g.Name, err)
			}
			sheet.Rows = append(sheet.Rows, row)
			n++
		}

		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}
