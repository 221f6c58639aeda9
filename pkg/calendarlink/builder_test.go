package calendarlink_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
)

func newBuilder(loc *time.Location) *calendarlink.Builder {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	n := datemath.NewNormalizerIn(loc, datemath.WithClock(func() time.Time { return now }))
	return calendarlink.New(n, calendarlink.Config{})
}

func query(t *testing.T, link string) url.Values {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("invalid URL %q: %v", link, err)
	}
	if u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Errorf("unexpected base URL: %s", link)
	}
	return u.Query()
}

func TestBuild_DateRanges(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDates string
		wantMixed bool
	}{
		{name: "All-day single", start: "2024-12-25", wantDates: "20241225/20241226"},
		{name: "All-day range is end exclusive", start: "2024-12-24", end: "2024-12-26", wantDates: "20241224/20241227"},
		{name: "All-day ending on new year's eve", start: "2024-12-30", end: "2024-12-31", wantDates: "20241230/20250101"},
		{name: "All-day start with timed end", start: "2024-12-05", end: "2024-12-05T11:30:00", wantDates: "20241205/20241205T113000Z", wantMixed: true},
		{name: "Timed single", start: "2024-12-05T10:00:00", wantDates: "20241205T100000Z"},
		{name: "Timed range", start: "2024-12-05T10:00:00", end: "2024-12-05T11:30:00", wantDates: "20241205T100000Z/20241205T113000Z"},
		{name: "Timed start with all-day end", start: "2024-12-05T10:00:00", end: "2024-12-06", wantDates: "20241205T100000Z/20241206", wantMixed: true},
		{name: "Unparseable end is dropped", start: "2024-12-05T10:00:00", end: "later", wantDates: "20241205T100000Z"},
		{name: "Unparseable end on all-day", start: "2024-12-25", end: "soon", wantDates: "20241225/20241226"},
	}

	b := newBuilder(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := b.Build(calendarlink.Event{Title: "x", StartDate: tt.start, EndDate: tt.end}, "", false)
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if got := query(t, link.URL).Get("dates"); got != tt.wantDates {
				t.Errorf("dates = %q, want %q", got, tt.wantDates)
			}
			if link.Params.Dates != tt.wantDates {
				t.Errorf("Params.Dates = %q, want %q", link.Params.Dates, tt.wantDates)
			}
			if link.Range.Mixed != tt.wantMixed {
				t.Errorf("Mixed = %v, want %v", link.Range.Mixed, tt.wantMixed)
			}
		})
	}
}

func TestBuild_TimedRangeWithOffset(t *testing.T) {
	b := newBuilder(time.FixedZone("UTC-5", -5*60*60))
	link, err := b.Build(calendarlink.Event{StartDate: "2024-12-05T10:00:00", EndDate: "2024-12-05T11:30:00"}, "", false)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if link.Params.Dates != "20241205T150000Z/20241205T163000Z" {
		t.Errorf("unexpected dates %q", link.Params.Dates)
	}
}

func TestBuild_NoStartDate(t *testing.T) {
	b := newBuilder(time.UTC)
	for _, start := range []string{"", "sometime next week"} {
		_, err := b.Build(calendarlink.Event{Title: "Party", StartDate: start, EndDate: "2024-12-25"}, "", true)
		if !errors.Is(err, calendarlink.ErrNoValidStartDate) {
			t.Errorf("Build(start=%q) error = %v, want ErrNoValidStartDate", start, err)
		}
	}
}

func TestBuild_Fields(t *testing.T) {
	b := newBuilder(time.UTC)

	t.Run("Christmas all-day", func(t *testing.T) {
		link, err := b.Build(calendarlink.Event{StartDate: "2024-12-25", Title: "Christmas"}, "", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := query(t, link.URL)
		if q.Get("action") != "TEMPLATE" {
			t.Errorf("action = %q", q.Get("action"))
		}
		if q.Get("text") != "Christmas" {
			t.Errorf("text = %q", q.Get("text"))
		}
		if q.Get("dates") != "20241225/20241226" {
			t.Errorf("dates = %q", q.Get("dates"))
		}
		if q.Has("location") || q.Has("details") {
			t.Errorf("optional fields should be omitted: %v", q)
		}
	})

	t.Run("Fallback title", func(t *testing.T) {
		link, _ := b.Build(calendarlink.Event{StartDate: "2024-12-25", Title: "   "}, "", false)
		if got := query(t, link.URL).Get("text"); got != calendarlink.DefaultFallbackTitle {
			t.Errorf("text = %q, want fallback", got)
		}
	})

	t.Run("Custom fallback title and base URL", func(t *testing.T) {
		custom := calendarlink.New(b.Normalizer(), calendarlink.Config{
			BaseURL:       "https://calendar.google.com/calendar/render",
			FallbackTitle: "Untitled",
		})
		link, _ := custom.Build(calendarlink.Event{StartDate: "2024-12-25"}, "", false)
		if got := query(t, link.URL).Get("text"); got != "Untitled" {
			t.Errorf("text = %q", got)
		}
	})

	t.Run("Location and details", func(t *testing.T) {
		ev := calendarlink.Event{
			Title:       "Team sync",
			StartDate:   "2024-12-05T10:00:00",
			Location:    "Room 4 & Lobby",
			Description: "Weekly sync",
		}
		link, _ := b.Build(ev, "Team sync Thursday 10am in Room 4", false)
		q := query(t, link.URL)
		if q.Get("location") != "Room 4 & Lobby" {
			t.Errorf("location = %q", q.Get("location"))
		}
		wantDetails := "Weekly sync\n\nOriginal Text:\nTeam sync Thursday 10am in Room 4"
		if q.Get("details") != wantDetails {
			t.Errorf("details = %q, want %q", q.Get("details"), wantDetails)
		}
		if strings.Contains(link.URL, " ") {
			t.Errorf("URL must be encoded: %s", link.URL)
		}
	})

	t.Run("Past year adjusted for model output", func(t *testing.T) {
		link, _ := b.Build(calendarlink.Event{StartDate: "2023-12-25"}, "", true)
		if link.Params.Dates != "20241225/20241226" {
			t.Errorf("dates = %q", link.Params.Dates)
		}
		link, _ = b.Build(calendarlink.Event{StartDate: "2023-12-25"}, "", false)
		if link.Params.Dates != "20231225/20231226" {
			t.Errorf("confirmed dates should not move, got %q", link.Params.Dates)
		}
	})
}

func TestDetails(t *testing.T) {
	tests := []struct {
		name string
		desc string
		orig string
		want string
	}{
		{name: "Both empty", want: ""},
		{name: "Description only", desc: "Bring snacks", want: "Bring snacks"},
		{name: "Original only", orig: "Lunch at noon", want: "Original Text:\nLunch at noon"},
		{name: "Identical after trim", desc: "Lunch at noon ", orig: "  Lunch at noon", want: "Lunch at noon"},
		{name: "Different", desc: "Lunch", orig: "Lunch at noon", want: "Lunch\n\nOriginal Text:\nLunch at noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendarlink.Details(tt.desc, tt.orig); got != tt.want {
				t.Errorf("Details() = %q, want %q", got, tt.want)
			}
		})
	}
}
