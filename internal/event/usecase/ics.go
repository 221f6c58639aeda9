package usecase

import (
	"context"
	"fmt"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/ics"
)

// ExportICS renders the event as a single-event iCalendar file.
func (uc *implUseCase) ExportICS(ctx context.Context, input event.ExportICSInput) (event.ExportICSOutput, error) {
	link, err := uc.BuildLink(ctx, input.BuildLinkInput)
	if err != nil {
		return event.ExportICSOutput{}, err
	}

	data, err := ics.Render(toLink(link), uc.normalizer.Location(), uc.normalizer.Now())
	if err != nil {
		return event.ExportICSOutput{}, fmt.Errorf("failed to render calendar file: %w", err)
	}

	return event.ExportICSOutput{
		Filename:    ics.Filename(toLink(link)),
		ContentType: ics.ContentType,
		Data:        data,
	}, nil
}
