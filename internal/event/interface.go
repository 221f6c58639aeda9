package event

import "context"

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Extract asks the model for an event in input.Text and builds its calendar link.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ExtractStream is Extract, forwarding every cumulative model answer to onAnswer.
	ExtractStream(ctx context.Context, input ExtractInput, onAnswer func(text string)) (ExtractOutput, error)

	// BuildLink builds the calendar deep link for an event.
	BuildLink(ctx context.Context, input BuildLinkInput) (BuildLinkOutput, error)

	// ExportICS renders the event as an iCalendar file.
	ExportICS(ctx context.Context, input ExportICSInput) (ExportICSOutput, error)

	// Schedule inserts the event into Google Calendar.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
