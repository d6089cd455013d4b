// Package validate provides a parse-only dry run over an OpenIntent export.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klytics/apsheet/internal/openintent"
	"github.com/klytics/apsheet/internal/output"
	"github.com/klytics/apsheet/internal/placement"
)

type floorReport struct {
	Floor        string `json:"floor"`
	Sheet        string `json:"sheet"`
	AccessPoints int    `json:"accessPoints"`
}

type report struct {
	File            string        `json:"file"`
	AccessPoints    int           `json:"accessPoints"`
	Floors          []floorReport `json:"floors"`
	MissingModel    int           `json:"missingModel"`
	MissingCoords   int           `json:"missingCoordinates"`
	MalformedCoords int           `json:"malformedCoordinates"`
	DuplicateSheet  string        `json:"duplicateSheet,omitempty"`
}

func buildReport(file string, doc *openintent.Document) report {
	rep := report{File: file, AccessPoints: len(doc.AccessPoints)}
	for _, ap := range doc.AccessPoints {
		if ap.Model == "" {
			rep.MissingModel++
		}
		switch {
		case ap.Coordinate == nil:
			rep.MissingCoords++
		case ap.Coordinate.X == nil || ap.Coordinate.Y == nil:
			// The row builder rejects this shape, so generate would fail.
			rep.MalformedCoords++
		}
	}

	sheets := make(map[string]string)
	for _, g := range doc.GroupByFloor() {
		sheet := placement.SheetName(g.Name)
		if prev, taken := sheets[sheet]; taken && rep.DuplicateSheet == "" {
			rep.DuplicateSheet = fmt.Sprintf("%q and %q both normalize to sheet %q", prev, g.Name, sheet)
		}
		sheets[sheet] = g.Name
		rep.Floors = append(rep.Floors, floorReport{
			Floor:        g.Name,
			Sheet:        sheet,
			AccessPoints: len(g.APs),
		})
	}

	return rep
}

// NewCommand returns the validate subcommand.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input.json>",
		Short: "Check an OpenIntent export without writing a workbook",
		Long: `Parses an OpenIntent export and reports what generate would produce:
floors in sheet order, per-floor access point counts, and records with
missing models or coordinates. Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			doc, err := openintent.Load(args[0])
			if err != nil {
				return err
			}
			if len(doc.AccessPoints) == 0 {
				return fmt.Errorf("no access points found in %s — nothing to generate", args[0])
			}

			rep := buildReport(args[0], doc)

			if jsonFlag {
				return output.PrintJSON("validate", rep)
			}

			fmt.Printf("%s: %d access points on %d floor(s)\n", rep.File, rep.AccessPoints, len(rep.Floors))
			for _, f := range rep.Floors {
				fmt.Printf("  %-30s -> %-31s %d AP(s)\n", f.Floor, f.Sheet, f.AccessPoints)
			}
			if rep.MissingModel > 0 {
				output.Warnf("%d access point(s) have no model — rows will carry an empty AP Model cell", rep.MissingModel)
			}
			if rep.MissingCoords > 0 {
				output.Warnf("%d access point(s) have no coordinates — their Notes cell will be empty", rep.MissingCoords)
			}
			if rep.MalformedCoords > 0 {
				output.Warnf("generate will fail: %d access point(s) have coordinate_xyz without numeric x/y", rep.MalformedCoords)
			}
			if rep.DuplicateSheet != "" {
				output.Warnf("generate will fail: %s", rep.DuplicateSheet)
			}
			return nil
		},
	}
}
