package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"text-to-calendar/pkg/gcalendar"
)

func newCalendarAuthCmd(root *rootOptions) *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access for an OAuth Desktop App",
		Long: `calendar-auth runs the OAuth installed-app flow once and saves the token
next to the service, so "schedule" and the API can insert events.
Service Account credentials need no authorization.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			} else if cfg, err := root.loadConfig(); err == nil && cfg.GoogleCalendar.CredentialsPath != "" {
				credsPath = cfg.GoogleCalendar.CredentialsPath
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			if _, err := gcalendar.ExchangeAndSave(cmd.Context(), oauthCfg, strings.TrimSpace(code), tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSaved %s. Restart the service to enable Google Calendar.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenFile, "Where to write the token")
	return cmd
}
