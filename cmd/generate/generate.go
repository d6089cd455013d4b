// Package generate provides the command that builds the placement workbook.
package generate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klytics/apsheet/internal/config"
	"github.com/klytics/apsheet/internal/output"
	"github.com/klytics/apsheet/internal/placement"
)

// NewCommand returns the generate subcommand.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <input.json> <output.xlsx>",
		Short: "Generate an AP placement workbook from an OpenIntent export",
		Long: `Reads an OpenIntent JSON export, groups access points by floor, and
writes a styled .xlsx workbook with one sheet per floor.

Each row gets a document-wide placement number (AP-001, AP-002, ...) and
the installation defaults from your config (antenna, mount, enclosure).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			inputPath := args[0]
			outputPath := args[1]
			if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
				outputPath += ".xlsx"
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			res, err := placement.GenerateFile(inputPath, outputPath, cfg.Defaults)
			if err != nil {
				return err
			}

			if jsonFlag {
				return output.PrintJSON("generate", res)
			}

			output.Successf("Wrote %s (%d sheets, %d access points)", res.File, res.Sheets, res.AccessPoints)
			for _, floor := range res.Floors {
				fmt.Printf("  %s -> %s\n", floor, placement.SheetName(floor))
			}
			return nil
		},
	}

	return cmd
}
