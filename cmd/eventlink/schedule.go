package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/usecase"
	"text-to-calendar/pkg/gcalendar"
)

func newScheduleCmd(root *rootOptions) *cobra.Command {
	var (
		fields     eventFlags
		calendarID string
	)

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Insert an event into Google Calendar",
		Example: `  eventlink schedule --title "Team lunch" --start 2026-06-20T12:30:00 --end 2026-06-20T13:30:00`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cfg.GoogleCalendar.CredentialsPath == "" {
				return event.ErrCalendarNotConfigured
			}
			builder, err := root.builder(cfg)
			if err != nil {
				return err
			}
			gcal, err := gcalendar.NewClientFromCredentialsFile(cmd.Context(), cfg.GoogleCalendar.CredentialsPath)
			if err != nil {
				return err
			}

			uc := usecase.New(root.logger(cmd, cfg), nil, builder, gcal, cfg.GoogleCalendar.CalendarID)
			out, err := uc.Schedule(cmd.Context(), event.ScheduleInput{
				BuildLinkInput: fields.input(),
				CalendarID:     calendarID,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.HTMLLink)
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().StringVar(&calendarID, "calendar", "", "Calendar ID (default: google_calendar.calendar_id)")
	return cmd
}
