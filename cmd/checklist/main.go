// Package main provides a CLI over the checklist engine.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"checklist-sync/internal/checklist"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	svc := checklist.New()

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Inspect and normalize checklist text",
		Long: `Work with checklist text, the same way the API stores task descriptions.

A checklist is text whose first line starts with [x], [X] or [ ].

Examples:
  checklist inspect notes.txt          # Items and derived progress as JSON
  checklist format --plain notes.txt   # Strip markers
  cat notes.txt | checklist progress --current-status cancelled
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(inspectCmd(svc))
	cmd.AddCommand(formatCmd(svc))
	cmd.AddCommand(progressCmd(svc))

	return cmd
}

// readInput reads the file named by args[0], or stdin when there is none or
// it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}
