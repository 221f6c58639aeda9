package calendarlink

import "errors"

// DefaultBaseURL is the Google Calendar event-creation endpoint.
const DefaultBaseURL = "https://calendar.google.com/calendar/render"

// DefaultFallbackTitle is used when the event has no title.
const DefaultFallbackTitle = "Event from Text"

// OriginalTextHeader introduces the selected text inside the details field.
const OriginalTextHeader = "Original Text:"

// ErrNoValidStartDate is returned when the start date is missing or unparseable.
var ErrNoValidStartDate = errors.New("no valid start date")

// Event is the link builder's view of an extracted event. Empty strings mean "unknown".
type Event struct {
	Title       string
	StartDate   string
	EndDate     string
	Location    string
	Description string
}

// Params are the deep-link query parameters.
type Params struct {
	Title    string
	Dates    string // "<start>" or "<start>/<end>"
	Location string
	Details  string
}

// Range is the normalized date range behind Params.Dates.
type Range struct {
	Start string
	End   string // empty when the consumer should pick a default duration
	// Mixed is set when one side is all-day and the other timed.
	Mixed bool
}

// Link is a fully assembled calendar deep link.
type Link struct {
	URL    string
	Params Params
	Range  Range
}
