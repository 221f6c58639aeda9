package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"text-to-calendar/pkg/datemath"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Run from an empty directory so no config.yaml is picked up.
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	fixed := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	cmd := newRootCmdWithOptions(&rootOptions{
		clock: datemath.WithClock(func() time.Time { return fixed }),
	})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--timezone", "UTC"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLinkCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "all-day single",
			args: []string{"link", "--title", "Offsite", "--start", "2026-07-01"},
			want: []string{"dates=20260701%2F20260702", "text=Offsite"},
		},
		{
			name: "timed range",
			args: []string{"link", "--title", "Lunch", "--start", "2026-06-20T12:30:00", "--end", "2026-06-20T13:30:00"},
			want: []string{"dates=20260620T123000Z%2F20260620T133000Z"},
		},
		{
			name: "past year adjusted",
			args: []string{"link", "--start", "2024-06-20"},
			want: []string{"dates=20260620%2F20260621", "text=Event+from+Text"},
		},
		{
			name: "confirmed keeps year",
			args: []string{"link", "--start", "2024-06-20", "--confirmed"},
			want: []string{"dates=20240620%2F20240621"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCmd(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(out, "https://calendar.google.com/calendar/render?") {
				t.Errorf("unexpected output %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q in %q", w, out)
				}
			}
		})
	}
}

func TestLinkCommand_InvalidStart(t *testing.T) {
	if _, _, err := runCmd(t, "", "link", "--start", "next tuesday"); err == nil {
		t.Errorf("expected error for unparseable start")
	}
	if _, _, err := runCmd(t, "", "link", "--title", "x"); err == nil {
		t.Errorf("expected error when --start is missing")
	}
}

func TestICSCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dentist.ics")

	_, _, err := runCmd(t, "", "ics", "--title", "Dentist", "--start", "2026-06-20T09:00:00", "-o", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "BEGIN:VEVENT") || !strings.Contains(string(data), "SUMMARY:Dentist") {
		t.Errorf("unexpected ics:\n%s", data)
	}

	out, _, err := runCmd(t, "", "ics", "--start", "2026-06-20", "-o", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20260620") {
		t.Errorf("unexpected ics on stdout:\n%s", out)
	}
}

func TestExtractCommand_NoText(t *testing.T) {
	if _, _, err := runCmd(t, "   ", "extract"); err == nil || !strings.Contains(err.Error(), "no text given") {
		t.Errorf("expected missing text error, got %v", err)
	}
}

func TestStreamPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := streamPrinter(&buf)
	p(`{"ti`)
	p(`{"title":"x"}`)
	if buf.String() != `{"title":"x"}` {
		t.Errorf("unexpected stream output %q", buf.String())
	}
}

func TestScheduleCommand_NotConfigured(t *testing.T) {
	_, _, err := runCmd(t, "", "schedule", "--start", "2026-06-20")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Errorf("expected not configured error, got %v", err)
	}
}
