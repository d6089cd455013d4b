// Package cmd contains all CLI commands for the apsheet binary.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/apsheet/cmd/completion"
	cmdconfig "github.com/klytics/apsheet/cmd/config"
	"github.com/klytics/apsheet/cmd/generate"
	"github.com/klytics/apsheet/cmd/inspect"
	"github.com/klytics/apsheet/cmd/validate"
	"github.com/klytics/apsheet/cmd/version"
	cmdwatch "github.com/klytics/apsheet/cmd/watch"
	"github.com/klytics/apsheet/internal/output"
)

var (
	jsonOutput bool
	noColor    bool
)

// NewRootCommand creates and returns the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apsheet",
		Short: "Generate AP placement workbooks from OpenIntent exports",
		Long: `apsheet — AP placement paperwork without the copy-paste.

Converts an OpenIntent JSON export of wireless access point placements
into a styled .xlsx survey workbook, one sheet per floor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	// Register subcommands
	rootCmd.AddCommand(generate.NewCommand())
	rootCmd.AddCommand(validate.NewCommand())
	rootCmd.AddCommand(inspect.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		output.Errorf("%s", err)
		os.Exit(1)
	}
}
