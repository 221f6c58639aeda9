package usecase

import (
	"context"
	"fmt"
	"time"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/datemath"
	"text-to-calendar/pkg/gcalendar"
	"text-to-calendar/pkg/ics"
)

// Schedule inserts the event straight into Google Calendar.
func (uc *implUseCase) Schedule(ctx context.Context, input event.ScheduleInput) (event.ScheduleOutput, error) {
	if uc.calendar == nil {
		return event.ScheduleOutput{}, event.ErrCalendarNotConfigured
	}

	link, err := uc.BuildLink(ctx, input.BuildLinkInput)
	if err != nil {
		return event.ScheduleOutput{}, err
	}

	req, err := uc.calendarRequest(link)
	if err != nil {
		return event.ScheduleOutput{}, err
	}
	req.CalendarID = input.CalendarID
	if req.CalendarID == "" {
		req.CalendarID = uc.calendarID
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "Schedule: calendar insert failed for %q: %v", req.Summary, err)
		return event.ScheduleOutput{}, fmt.Errorf("failed to schedule event: %w", err)
	}

	uc.l.Infof(ctx, "Schedule: created event id=%s all_day=%t", created.ID, req.AllDay)

	return event.ScheduleOutput{
		EventID:  created.ID,
		HTMLLink: created.HtmlLink,
		Link:     link,
	}, nil
}

// calendarRequest maps the normalized range onto an insert request. Mixed
// ranges are inserted as timed events with the all-day side at midnight.
func (uc *implUseCase) calendarRequest(link event.BuildLinkOutput) (gcalendar.CreateEventRequest, error) {
	loc := uc.normalizer.Location()

	start, startAllDay, err := datemath.ParsePart(link.Range.Start, loc)
	if err != nil {
		return gcalendar.CreateEventRequest{}, fmt.Errorf("invalid start %q: %w", link.Range.Start, err)
	}

	end := start.Add(ics.DefaultDuration)
	if link.Range.End != "" {
		if end, _, err = datemath.ParsePart(link.Range.End, loc); err != nil {
			return gcalendar.CreateEventRequest{}, fmt.Errorf("invalid end %q: %w", link.Range.End, err)
		}
	}

	return gcalendar.CreateEventRequest{
		Summary:     link.Params.Title,
		Description: link.Params.Details,
		Location:    link.Params.Location,
		AllDay:      startAllDay && !link.Range.Mixed,
		StartTime:   start.In(loc),
		EndTime:     end.In(loc),
		Timezone:    zoneName(loc),
	}, nil
}

// zoneName returns loc's IANA name, or "" when it has none the API would accept.
func zoneName(loc *time.Location) string {
	name := loc.String()
	if name == "Local" {
		return ""
	}
	if _, err := time.LoadLocation(name); err != nil {
		return ""
	}
	return name
}
