package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/usecase"
)

func newICSCmd(root *rootOptions) *cobra.Command {
	var (
		fields eventFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write an event as an .ics file",
		Example: `  eventlink ics --title Dentist --start 2026-06-20T09:00:00 -o dentist.ics
  eventlink ics --start 2026-06-20 -o - | mail -a -`,
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
			out, err := uc.ExportICS(cmd.Context(), event.ExportICSInput{BuildLinkInput: fields.input()})
			if err != nil {
				return err
			}
			return writeICS(cmd, output, out)
		},
	}

	fields.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", `Output file, "-" for stdout (default: event-<start>.ics)`)
	return cmd
}

func writeICS(cmd *cobra.Command, path string, out event.ExportICSOutput) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(out.Data)
		return err
	}
	if path == "" {
		path = out.Filename
	}
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "wrote", path)
	return nil
}
