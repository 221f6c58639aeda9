package event

import (
	"strings"

	"text-to-calendar/pkg/calendarlink"
)

// ExtractedEvent is the event record the model returns. Nil means "unknown".
type ExtractedEvent struct {
	Title       *string `json:"title"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// IsEmpty reports whether no field carries a non-blank value. The model
// answers "{}" (or all nulls) when the text holds no event.
func (e ExtractedEvent) IsEmpty() bool {
	for _, f := range []*string{e.Title, e.StartDate, e.EndDate, e.Location, e.Description} {
		if f != nil && strings.TrimSpace(*f) != "" {
			return false
		}
	}
	return true
}

// LinkEvent converts the record into the link builder's input.
func (e ExtractedEvent) LinkEvent() calendarlink.Event {
	return calendarlink.Event{
		Title:       deref(e.Title),
		StartDate:   deref(e.StartDate),
		EndDate:     deref(e.EndDate),
		Location:    deref(e.Location),
		Description: deref(e.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Status summarizes an extraction for clients.
type Status string

const (
	StatusFound         Status = "found"
	StatusEmpty         Status = "empty"
	StatusNeedStartDate Status = "need_start_date"
)

// ExtractInput is the input for Extract.
type ExtractInput struct {
	Text string
}

// ExtractOutput is the result of Extract.
// Empty and NeedsStartDate are outcomes, not errors: the caller shows the
// "no event detected" template or asks the user for a start date.
type ExtractOutput struct {
	Event          ExtractedEvent
	Empty          bool
	NeedsStartDate bool
	Link           *BuildLinkOutput // set when a link could be built
	Answer         string           // final model answer
}

// Status maps the output onto a Status.
func (o ExtractOutput) Status() Status {
	switch {
	case o.Empty:
		return StatusEmpty
	case o.NeedsStartDate:
		return StatusNeedStartDate
	default:
		return StatusFound
	}
}

// BuildLinkInput is the input for BuildLink, ExportICS and Schedule.
// Confirmed marks dates the user has reviewed; their years are kept as given.
type BuildLinkInput struct {
	Event        ExtractedEvent
	OriginalText string
	Confirmed    bool
}

// BuildLinkOutput is a calendar deep link with its parts.
type BuildLinkOutput struct {
	URL    string
	Params calendarlink.Params
	Range  calendarlink.Range
}

// Mixed reports whether one side of the range is all-day and the other timed.
func (o BuildLinkOutput) Mixed() bool {
	return o.Range.Mixed
}

// ExportICSInput is the input for ExportICS.
type ExportICSInput struct {
	BuildLinkInput
}

// ExportICSOutput is a rendered calendar file.
type ExportICSOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ScheduleInput is the input for Schedule.
type ScheduleInput struct {
	BuildLinkInput
	CalendarID string // empty means the configured calendar
}

// ScheduleOutput is the created Google Calendar event.
type ScheduleOutput struct {
	EventID  string
	HTMLLink string
	Link     BuildLinkOutput
}
