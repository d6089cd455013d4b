// Package inspect provides a read-back summary of a generated workbook.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/klytics/apsheet/internal/formats/xlsx"
	"github.com/klytics/apsheet/internal/output"
)

type sheetSummary struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	FirstPlacement string `json:"firstPlacement,omitempty"`
	LastPlacement  string `json:"lastPlacement,omitempty"`
}

// NewCommand returns the inspect subcommand.
func NewCommand() *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "inspect <file.xlsx>",
		Short: "Summarize a placement workbook",
		Long:  "Reads an .xlsx workbook and prints per-sheet row counts and placement number ranges. Pass '-' to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			var wb *xlsx.Workbook
			var err error

			if args[0] == "-" {
				data, readErr := io.ReadAll(os.Stdin)
				if readErr != nil {
					return fmt.Errorf("could not read from stdin: %w", readErr)
				}
				if len(data) == 0 {
					return fmt.Errorf("no input provided — pass an .xlsx file path or pipe data to stdin")
				}
				wb, err = xlsx.ReadBytes(data)
			} else {
				wb, err = xlsx.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			if sheetName != "" {
				sheet, err := wb.GetSheet(sheetName)
				if err != nil {
					return err
				}
				wb = &xlsx.Workbook{Sheets: []xlsx.Sheet{*sheet}}
			}

			var summaries []sheetSummary
			for _, s := range wb.Sheets {
				sum := sheetSummary{Name: s.Name, Rows: s.RowCount()}
				if len(s.Rows) > 0 {
					if len(s.Rows[0]) > 0 {
						sum.FirstPlacement = s.Rows[0][0]
					}
					if last := s.Rows[len(s.Rows)-1]; len(last) > 0 {
						sum.LastPlacement = last[0]
					}
				}
				summaries = append(summaries, sum)
			}

			if jsonFlag {
				return output.PrintJSON("inspect", summaries)
			}

			fmt.Printf("%s: %d sheet(s)\n", args[0], len(summaries))
			for _, s := range summaries {
				if s.FirstPlacement != "" {
					fmt.Printf("  %-31s %3d row(s)  %s..%s\n", s.Name, s.Rows, s.FirstPlacement, s.LastPlacement)
				} else {
					fmt.Printf("  %-31s %3d row(s)\n", s.Name, s.Rows)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Limit output to one sheet")

	return cmd
}
