package gcalendar

import "time"

// DateLayout is the calendar API's all-day date format.
const DateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
// For all-day events only the date of Start and End is used and End is exclusive.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	AllDay      bool
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	Location  string
	AllDay    bool
	StartTime time.Time
	EndTime   time.Time
}
