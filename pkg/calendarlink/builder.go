// Package calendarlink turns an extracted event into a calendar deep link.
package calendarlink

import (
	"net/url"
	"strings"

	"text-to-calendar/pkg/datemath"
)

// Builder assembles calendar deep links. It holds no mutable state.
type Builder struct {
	normalizer    *datemath.Normalizer
	baseURL       string
	fallbackTitle string
}

// Config configures a Builder. Zero values fall back to the package defaults.
type Config struct {
	BaseURL       string
	FallbackTitle string
}

// New creates a Builder using n for date normalization.
func New(n *datemath.Normalizer, cfg Config) *Builder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FallbackTitle == "" {
		cfg.FallbackTitle = DefaultFallbackTitle
	}
	return &Builder{
		normalizer:    n,
		baseURL:       cfg.BaseURL,
		fallbackTitle: cfg.FallbackTitle,
	}
}

// Normalizer returns the date normalizer the builder formats with.
func (b *Builder) Normalizer() *datemath.Normalizer {
	return b.normalizer
}

// Range formats the event's start and end into a deep-link date range.
// All-day ends are exclusive, so they are advanced by one day; a missing
// all-day end becomes a one-day range. Timed ranges are used verbatim.
func (b *Builder) Range(ev Event, adjustPastYears bool) (Range, error) {
	start, ok := b.normalizer.FormatForCalendar(ev.StartDate, adjustPastYears)
	if !ok {
		return Range{}, ErrNoValidStartDate
	}
	end, hasEnd := b.normalizer.FormatForCalendar(ev.EndDate, adjustPastYears)

	startAllDay := datemath.IsAllDayPart(start)
	switch {
	case !hasEnd && startAllDay:
		return Range{Start: start, End: datemath.NextDay(start)}, nil
	case !hasEnd:
		return Range{Start: start}, nil
	case startAllDay != datemath.IsAllDayPart(end):
		return Range{Start: start, End: end, Mixed: true}, nil
	case startAllDay:
		return Range{Start: start, End: datemath.NextDay(end)}, nil
	default:
		return Range{Start: start, End: end}, nil
	}
}

// Build returns the deep link for ev. originalText is the user's selection
// and is appended to the details when it differs from the description.
func (b *Builder) Build(ev Event, originalText string, adjustPastYears bool) (Link, error) {
	r, err := b.Range(ev, adjustPastYears)
	if err != nil {
		return Link{}, err
	}

	params := Params{
		Title:    b.title(ev.Title),
		Dates:    r.Dates(),
		Location: strings.TrimSpace(ev.Location),
		Details:  Details(ev.Description, originalText),
	}

	return Link{
		URL:    b.URL(params),
		Params: params,
		Range:  r,
	}, nil
}

// URL serializes params onto the builder's base URL.
func (b *Builder) URL(p Params) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", p.Title)
	q.Set("dates", p.Dates)
	if p.Location != "" {
		q.Set("location", p.Location)
	}
	if p.Details != "" {
		q.Set("details", p.Details)
	}
	return b.baseURL + "?" + q.Encode()
}

func (b *Builder) title(t string) string {
	if t = strings.TrimSpace(t); t != "" {
		return t
	}
	return b.fallbackTitle
}

// Dates renders the range as the deep-link "dates" parameter.
func (r Range) Dates() string {
	if r.End == "" {
		return r.Start
	}
	return r.Start + "/" + r.End
}

// Details joins the description with the original selection under an
// "Original Text:" header. The selection is skipped when it matches the
// description after trimming.
func Details(description, originalText string) string {
	desc := strings.TrimSpace(description)
	orig := strings.TrimSpace(originalText)

	var parts []string
	if desc != "" {
		parts = append(parts, desc)
	}
	if orig != "" && orig != desc {
		parts = append(parts, OriginalTextHeader+"\n"+orig)
	}
	return strings.Join(parts, "\n\n")
}
