// Package output provides formatting utilities for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// JSONResult is the JSON output envelope used by every command under --json.
type JSONResult struct {
	OK      bool        `json:"ok"`
	Command string      `json:"command"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PrintJSON writes a success JSON result to stdout.
func PrintJSON(cmd string, data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONResult{OK: true, Command: cmd, Data: data})
}

// Successf prints a green confirmation line to stdout.
func Successf(format string, args ...interface{}) {
	fmt.Println(color.GreenString(format, args...))
}

// Warnf prints a yellow advisory line to stdout.
func Warnf(format string, args ...interface{}) {
	fmt.Println(color.YellowString(format, args...))
}

// Errorf prints an error message to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
