package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/usecase"
	"text-to-calendar/pkg/llmprovider"
)

func newExtractCmd(root *rootOptions) *cobra.Command {
	var (
		asJSON bool
		stream bool
		icsOut string
	)

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Extract an event from text with the configured model",
		Long: `extract sends the text (arguments, or stdin when none are given) to the
configured language model and prints the Google Calendar link of the event it finds.`,
		Example: `  eventlink extract "Dinner with Sam next Friday at 7pm at Luigi's"
  pbpaste | eventlink extract --ics -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := root.logger(cmd, cfg)

			llm, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
			if err != nil {
				return err
			}
			builder, err := root.builder(cfg)
			if err != nil {
				return err
			}
			uc := usecase.New(logger, llm, builder, nil, "")

			var onAnswer func(string)
			if stream {
				onAnswer = streamPrinter(cmd.ErrOrStderr())
			} else {
				onAnswer = func(string) {}
			}

			out, err := uc.ExtractStream(cmd.Context(), event.ExtractInput{Text: text}, onAnswer)
			if stream {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				if errors.Is(err, event.ErrUnreadableResponse) {
					return errors.New("could not understand the response")
				}
				return err
			}

			switch {
			case out.Empty:
				fmt.Fprintln(cmd.ErrOrStderr(), "No event detected.")
				return nil
			case out.NeedsStartDate || out.Link == nil:
				fmt.Fprintln(cmd.ErrOrStderr(), "An event was found but it has no usable start date.")
				return nil
			}

			if icsOut != "" {
				file, err := uc.ExportICS(cmd.Context(), event.ExportICSInput{
					BuildLinkInput: event.BuildLinkInput{Event: out.Event, OriginalText: text},
				})
				if err != nil {
					return err
				}
				return writeICS(cmd, icsOut, file)
			}

			if asJSON {
				return printLinkJSON(cmd, *out.Link)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Link.URL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the link and its parameters as JSON")
	cmd.Flags().BoolVar(&stream, "stream", false, "Echo the model answer to stderr as it arrives")
	cmd.Flags().StringVar(&icsOut, "ics", "", `Write an .ics file instead of printing the link ("-" for stdout)`)
	return cmd
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no text given: pass it as arguments or on stdin")
	}
	return text, nil
}

// streamPrinter echoes the growing cumulative answer, writing only the new suffix.
func streamPrinter(w io.Writer) func(string) {
	var printed string
	return func(answer string) {
		if strings.HasPrefix(answer, printed) {
			fmt.Fprint(w, answer[len(printed):])
		} else {
			fmt.Fprint(w, "\n", answer)
		}
		printed = answer
	}
}
