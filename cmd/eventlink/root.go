package main

import (
	"github.com/spf13/cobra"

	"text-to-calendar/config"
	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/usecase"
	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
	"text-to-calendar/pkg/log"
)

type rootOptions struct {
	configPath string
	timezone   string
	verbose    bool

	// clock overrides time.Now in tests.
	clock datemath.Option
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventlink",
		Short: "Turn text into a Google Calendar link",
		Long: `eventlink extracts an event from free-form text with a language model and
prints a Google Calendar "add event" link, or writes an .ics file.
Without a model, "eventlink link" builds the link from explicit fields.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: ./config/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.timezone, "timezone", "", "IANA timezone for dates without offset (overrides calendar.timezone)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(newLinkCmd(opts))
	cmd.AddCommand(newICSCmd(opts))
	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newScheduleCmd(opts))
	cmd.AddCommand(newCalendarAuthCmd(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if o.timezone != "" {
		cfg.Calendar.Timezone = o.timezone
	}
	return cfg, nil
}

func (o *rootOptions) logger(cmd *cobra.Command, cfg *config.Config) log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
		Output:   cmd.ErrOrStderr(),
	})
}

func (o *rootOptions) builder(cfg *config.Config) (*calendarlink.Builder, error) {
	var opts []datemath.Option
	if o.clock != nil {
		opts = append(opts, o.clock)
	}
	return usecase.NewLinkBuilder(cfg.Calendar, opts...)
}

// eventFlags are the explicit event fields shared by link and ics.
type eventFlags struct {
	title       string
	start       string
	end         string
	location    string
	description string
	text        string
	confirmed   bool
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title")
	cmd.Flags().StringVar(&f.start, "start", "", "Start: YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss")
	cmd.Flags().StringVar(&f.end, "end", "", "End: YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss")
	cmd.Flags().StringVar(&f.location, "location", "", "Event location")
	cmd.Flags().StringVar(&f.description, "description", "", "Event description")
	cmd.Flags().StringVar(&f.text, "text", "", "Original text, appended to the details")
	cmd.Flags().BoolVar(&f.confirmed, "confirmed", false, "Keep past years as given")
	_ = cmd.MarkFlagRequired("start")
}

func (f *eventFlags) input() event.BuildLinkInput {
	return event.BuildLinkInput{
		Event: event.ExtractedEvent{
			Title:       optional(f.title),
			StartDate:   optional(f.start),
			EndDate:     optional(f.end),
			Location:    optional(f.location),
			Description: optional(f.description),
		},
		OriginalText: f.text,
		Confirmed:    f.confirmed,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
