// Package watch provides the "apsheet watch" command for continuous regeneration.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/klytics/apsheet/internal/config"
	"github.com/klytics/apsheet/internal/output"
	"github.com/klytics/apsheet/internal/placement"
	w "github.com/klytics/apsheet/internal/watch"
)

// NewCommand returns the watch subcommand.
func NewCommand() *cobra.Command {
	var debounce int

	cmd := &cobra.Command{
		Use:   "watch <input.json> <output.xlsx>",
		Short: "Regenerate the workbook whenever the export changes",
		Long: `Generates the workbook once, then keeps watching the input file and
regenerates on every change. Useful while a site survey is still being
edited in the planning tool.

Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			outputPath := args[1]
			if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
				outputPath += ".xlsx"
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			regenerate := func() error {
				_, err := placement.GenerateFile(inputPath, outputPath, cfg.Defaults)
				return err
			}

			// Initial run; a broken export should fail before we start waiting.
			res, err := placement.GenerateFile(inputPath, outputPath, cfg.Defaults)
			if err != nil {
				return err
			}
			output.Successf("Wrote %s (%d sheets, %d access points)", res.File, res.Sheets, res.AccessPoints)

			watcher, err := w.New(inputPath, time.Duration(debounce)*time.Millisecond, regenerate)
			if err != nil {
				return err
			}

			fmt.Printf("Watching %s — press Ctrl+C to stop\n", inputPath)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Println("\nStopping watcher...")
				cancel()
			}()

			return watcher.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&debounce, "debounce", 500, "Debounce interval in milliseconds")

	return cmd
}
