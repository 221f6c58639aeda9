package usecase

import (
	"context"
	"errors"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/calendarlink"
)

// BuildLink builds the deep link for an event. Years are only corrected
// for dates the user has not confirmed.
func (uc *implUseCase) BuildLink(ctx context.Context, input event.BuildLinkInput) (event.BuildLinkOutput, error) {
	link, err := uc.buildLink(ctx, input.Event, input.OriginalText, !input.Confirmed)
	if errors.Is(err, calendarlink.ErrNoValidStartDate) {
		return event.BuildLinkOutput{}, event.ErrNeedStartDate
	}
	return link, err
}

func (uc *implUseCase) buildLink(ctx context.Context, ev event.ExtractedEvent, originalText string, adjustPastYears bool) (event.BuildLinkOutput, error) {
	link, err := uc.builder.Build(ev.LinkEvent(), originalText, adjustPastYears)
	if err != nil {
		return event.BuildLinkOutput{}, err
	}

	if link.Range.Mixed {
		uc.l.Warnf(ctx, "BuildLink: start and end mix all-day and timed values, using %q as given", link.Params.Dates)
	}

	return event.BuildLinkOutput{
		URL:    link.URL,
		Params: link.Params,
		Range:  link.Range,
	}, nil
}

func toLink(o event.BuildLinkOutput) calendarlink.Link {
	return calendarlink.Link{URL: o.URL, Params: o.Params, Range: o.Range}
}
