package placement

import (
	"fmt"

	"github.com/klytics/apsheet/internal/formats/xlsx"
	"github.com/klytics/apsheet/internal/openintent"
)

// Result summarizes one generation run.
type Result struct {
	File         string   `json:"file"`
	Floors       []string `json:"floors"`
	Sheets       int      `json:"sheets"`
	AccessPoints int      `json:"accessPoints"`
}

// GenerateFile runs the whole pipeline: load the OpenIntent export at
// inputPath, group by floor, build the workbook, and save it to outputPath.
// An export without access points is an error and writes nothing.
func GenerateFile(inputPath, outputPath string, d Defaults) (*Result, error) {
	doc, err := openintent.Load(inputPath)
	if err != nil {
		return nil, err
	}

	if len(doc.AccessPoints) == 0 {
		return nil, fmt.Errorf("no access points found in %s — nothing to generate", inputPath)
	}

	groups := doc.GroupByFloor()

	wb, err := BuildWorkbook(groups, d)
	if err != nil {
		return nil, err
	}

	if err := xlsx.WriteFile(wb, outputPath); err != nil {
		return nil, err
	}

	res := &Result{
		File:         outputPath,
		Sheets:       len(wb.Sheets),
		AccessPoints: len(doc.AccessPoints),
	}
	for _, g := range groups {
		res.Floors = append(res.Floors, g.Name)
	}
	return res, nil
}
