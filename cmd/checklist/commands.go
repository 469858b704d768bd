package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
)

type inspectResult struct {
	Checklist          bool             `json:"checklist"`
	LooksLikeChecklist bool             `json:"looks_like_checklist"`
	Items              []checklist.Item `json:"items"`
	Percent            *int             `json:"percent,omitempty"`
	Status             string           `json:"status,omitempty"`
}

func inspectCmd(svc checklist.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the parsed items and derived progress as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			doc := svc.Parse(text)
			res := inspectResult{
				Checklist:          svc.IsChecklist(text),
				LooksLikeChecklist: svc.LooksLikeChecklist(text),
				Items:              doc.Items,
			}
			if res.Items == nil {
				res.Items = []checklist.Item{}
			}
			if res.Checklist {
				if p, ok := svc.Derive(doc.Items); ok {
					res.Percent = &p.Percent
					res.Status = p.Status.String()
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}

func formatCmd(svc checklist.Service) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Normalize text into a checklist, or strip markers with --plain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := svc.SwitchMode(text, !plain)
			if out == "" {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Write plain lines without markers")
	return cmd
}

func progressCmd(svc checklist.Service) *cobra.Command {
	var (
		currentStatus  string
		currentPercent int
	)

	cmd := &cobra.Command{
		Use:   "progress [file]",
		Short: "Show derived progress and which stored fields would be overwritten",
		Long: `Show derived progress and which stored fields would be overwritten.

--current-status and --current-percent describe the values already stored.
A cancelled status is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var current checklist.Fields
			if currentStatus != "" {
				status, err := model.ParseTaskStatus(currentStatus)
				if err != nil {
					return err
				}
				current.Status = &status
			}
			if cmd.Flags().Changed("current-percent") {
				if currentPercent < 0 || currentPercent > 100 {
					return fmt.Errorf("--current-percent must be between 0 and 100, got %d", currentPercent)
				}
				current.Percent = &currentPercent
			}

			out := cmd.OutOrStdout()
			if !svc.IsChecklist(text) {
				_, err := fmt.Fprintln(out, "not a checklist")
				return err
			}

			items := svc.Parse(text).Items
			p, ok := svc.Derive(items)
			if !ok {
				_, err := fmt.Fprintln(out, "no items")
				return err
			}

			writes := svc.Apply(current, items)
			var parts []string
			if writes.Status != nil {
				parts = append(parts, "status="+writes.Status.String())
			}
			if writes.Percent != nil {
				parts = append(parts, fmt.Sprintf("percent=%d", *writes.Percent))
			}
			if len(parts) == 0 {
				parts = append(parts, "none")
			}

			_, err = fmt.Fprintf(out, "percent: %d\nstatus: %s\nwrites: %s\n", p.Percent, p.Status, strings.Join(parts, " "))
			return err
		},
	}

	cmd.Flags().StringVar(&currentStatus, "current-status", "", "Stored status (needs_action, in_process, completed, cancelled)")
	cmd.Flags().IntVar(&currentPercent, "current-percent", 0, "Stored percent complete")
	return cmd
}
