package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/usecase"
)

func newLinkCmd(root *rootOptions) *cobra.Command {
	var (
		fields eventFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the Google Calendar link for an event",
		Example: `  eventlink link --title "Team lunch" --start 2026-06-20T12:30:00 --end 2026-06-20T13:30:00
  eventlink link --title Offsite --start 2026-07-01 --end 2026-07-03 --confirmed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			builder, err := root.builder(cfg)
			if err != nil {
				return err
			}

			uc := usecase.New(root.logger(cmd, cfg), nil, builder, nil, "")
			out, err := uc.BuildLink(cmd.Context(), fields.input())
			if err != nil {
				return err
			}

			if asJSON {
				return printLinkJSON(cmd, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the link and its parameters as JSON")
	return cmd
}

func printLinkJSON(cmd *cobra.Command, out event.BuildLinkOutput) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"url":      out.URL,
		"text":     out.Params.Title,
		"dates":    out.Params.Dates,
		"location": out.Params.Location,
		"details":  out.Params.Details,
		"mixed":    out.Mixed(),
	})
}
