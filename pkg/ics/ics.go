// Package ics renders a calendar deep link as an RFC 5545 calendar file.
package ics

import (
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
)

// ProductID is written to PRODID.
const ProductID = "-//text-to-calendar//EN"

// DefaultDuration is used for timed events without an end.
const DefaultDuration = time.Hour

// ContentType is the MIME type of Render's output.
const ContentType = "text/calendar; charset=utf-8"

var uidNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8") // URL namespace

// Render builds a single-VEVENT calendar from link. All-day ranges keep the
// exclusive end already present in the link; mixed ranges are written as
// timed events with all-day sides at midnight in loc.
func Render(link calendarlink.Link, loc *time.Location, stamp time.Time) ([]byte, error) {
	if link.Range.Start == "" {
		return nil, calendarlink.ErrNoValidStartDate
	}

	start, startAllDay, err := datemath.ParsePart(link.Range.Start, loc)
	if err != nil {
		return nil, fmt.Errorf("ics: invalid start %q: %w", link.Range.Start, err)
	}

	var end time.Time
	if link.Range.End != "" {
		end, _, err = datemath.ParsePart(link.Range.End, loc)
		if err != nil {
			return nil, fmt.Errorf("ics: invalid end %q: %w", link.Range.End, err)
		}
	} else {
		end = start.Add(DefaultDuration)
	}
	if end.Before(start) {
		return nil, errors.New("ics: end is before start")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	event := cal.AddEvent(UID(link))
	event.SetDtStampTime(stamp.UTC())
	event.SetSummary(link.Params.Title)
	if link.Params.Location != "" {
		event.SetLocation(link.Params.Location)
	}
	if link.Params.Details != "" {
		event.SetDescription(link.Params.Details)
	}

	if startAllDay && !link.Range.Mixed {
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
	} else {
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	return []byte(cal.Serialize()), nil
}

// UID derives a stable event UID from the link, so re-exporting the same
// event updates it instead of duplicating it.
func UID(link calendarlink.Link) string {
	return uuid.NewSHA1(uidNamespace, []byte(link.URL)).String() + "@text-to-calendar"
}

// Filename returns a download name for the event.
func Filename(link calendarlink.Link) string {
	return "event-" + link.Range.Start + ".ics"
}
