package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"text-to-calendar/internal/event"
)

func TestSchedule_NotConfigured(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil)
	_, err := uc.Schedule(context.Background(), event.ScheduleInput{})
	if !errors.Is(err, event.ErrCalendarNotConfigured) {
		t.Fatalf("expected ErrCalendarNotConfigured, got %v", err)
	}
}

func TestSchedule_AllDay(t *testing.T) {
	cal := &mockCalendar{}
	uc, _ := newTestUseCase(nil, cal)

	out, err := uc.Schedule(context.Background(), event.ScheduleInput{BuildLinkInput: event.BuildLinkInput{
		Event:     event.ExtractedEvent{Title: strp("Trip"), StartDate: strp("2026-07-01"), EndDate: strp("2026-07-03")},
		Confirmed: true,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EventID != "evt-1" || out.HTMLLink == "" {
		t.Errorf("unexpected output: %+v", out)
	}

	req := cal.req
	if !req.AllDay || req.CalendarID != "primary" || req.Summary != "Trip" {
		t.Errorf("unexpected request: %+v", req)
	}
	if got := req.EndTime.Format("2006-01-02"); got != "2026-07-04" {
		t.Errorf("expected exclusive end 2026-07-04, got %s", got)
	}
}

func TestSchedule_TimedDefaultsToOneHour(t *testing.T) {
	cal := &mockCalendar{}
	uc, _ := newTestUseCase(nil, cal)

	_, err := uc.Schedule(context.Background(), event.ScheduleInput{
		BuildLinkInput: event.BuildLinkInput{
			Event:     event.ExtractedEvent{StartDate: strp("2026-06-20T18:30:00")},
			Confirmed: true,
		},
		CalendarID: "team@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := cal.req
	if req.AllDay || req.CalendarID != "team@example.com" {
		t.Errorf("unexpected request: %+v", req)
	}
	want := time.Date(2026, 6, 20, 18, 30, 0, 0, testZone)
	if !req.StartTime.Equal(want) || req.EndTime.Sub(req.StartTime) != time.Hour {
		t.Errorf("unexpected times: %s - %s", req.StartTime, req.EndTime)
	}
	// fixed zones have no IANA name
	if req.Timezone != "" {
		t.Errorf("expected empty timezone for a fixed zone, got %q", req.Timezone)
	}
}

func TestSchedule_CalendarError(t *testing.T) {
	uc, _ := newTestUseCase(nil, &mockCalendar{err: errors.New("forbidden")})
	_, err := uc.Schedule(context.Background(), event.ScheduleInput{BuildLinkInput: event.BuildLinkInput{
		Event: event.ExtractedEvent{StartDate: strp("2026-06-20")},
	}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestZoneName(t *testing.T) {
	if got := zoneName(time.UTC); got != "UTC" {
		t.Errorf("UTC: got %q", got)
	}
	if got := zoneName(time.Local); got != "" {
		t.Errorf("Local: got %q", got)
	}
}
