package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var allDayRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// localLayouts are parsed as wall-clock time in the normalizer's location.
// Fractional seconds are accepted by time.Parse without being listed.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalizer converts model/user date strings into calendar deep-link parts.
// It is safe for concurrent use.
type Normalizer struct {
	location *time.Location
	now      func() time.Time
	policy   YearPolicy
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces time.Now as the source of the current date.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithYearPolicy sets the past-year correction threshold.
func WithYearPolicy(p YearPolicy) Option {
	return func(n *Normalizer) { n.policy = p }
}

// NewNormalizer creates a normalizer for the given IANA timezone string.
// An empty timezone means the host's local time.
func NewNormalizer(timezone string, opts ...Option) (*Normalizer, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	return NewNormalizerIn(loc, opts...), nil
}

// NewNormalizerIn creates a normalizer bound to loc.
func NewNormalizerIn(loc *time.Location, opts ...Option) *Normalizer {
	n := &Normalizer{
		location: loc,
		now:      time.Now,
		policy:   AdjustAnyPastYear,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Location returns the location wall-clock strings are interpreted in.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Policy returns the configured past-year policy.
func (n *Normalizer) Policy() YearPolicy {
	return n.policy
}

// Now returns the current time in the normalizer's location.
func (n *Normalizer) Now() time.Time {
	return n.now().In(n.location)
}

// Today returns midnight at the start of the current day.
func (n *Normalizer) Today() time.Time {
	return n.StartOfDay(n.now())
}

// StartOfDay returns midnight at the start of the given day in the normalizer's timezone.
func (n *Normalizer) StartOfDay(t time.Time) time.Time {
	t = t.In(n.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (n *Normalizer) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Parse reads value as a local wall-clock time. Strings carrying an explicit
// RFC3339 offset keep that offset.
func (n *Normalizer) Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, n.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatForCalendar returns value as a FormattedDatePart: YYYYMMDD when value
// is lexically a bare date, otherwise the UTC instant as YYYYMMDDTHHMMSSZ.
// Empty or unparseable input yields ok == false.
//
// With adjustPastYears set, a stale year (per the policy) is replaced by the
// current year. Feb 29 moved into a non-leap year rolls over to Mar 1.
func (n *Normalizer) FormatForCalendar(value string, adjustPastYears bool) (string, bool) {
	if value == "" {
		return "", false
	}

	t, ok := n.Parse(value)
	if !ok {
		return "", false
	}

	// All-day is a property of the input text, not of the parsed instant.
	allDay := allDayRe.MatchString(value)

	if adjustPastYears {
		current := n.Now().Year()
		if n.policy.stale(t.Year(), current) {
			t = time.Date(current, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	}

	if allDay {
		return t.Format(AllDayLayout), true
	}
	return t.UTC().Format(TimedLayout), true
}

// IsAllDayPart reports whether part has the 8-digit all-day shape.
func IsAllDayPart(part string) bool {
	if len(part) != len(AllDayLayout) {
		return false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NextDay returns the calendar day after an all-day part, computed in UTC.
// Malformed input is returned unchanged.
func NextDay(yyyymmdd string) string {
	if !IsAllDayPart(yyyymmdd) {
		return yyyymmdd
	}
	t, err := time.ParseInLocation(AllDayLayout, yyyymmdd, time.UTC)
	if err != nil {
		return yyyymmdd
	}
	return t.AddDate(0, 0, 1).Format(AllDayLayout)
}

// ParsePart decodes a FormattedDatePart back into a time. All-day parts are
// returned as midnight in loc, timed parts as UTC instants.
func ParsePart(part string, loc *time.Location) (t time.Time, allDay bool, err error) {
	if IsAllDayPart(part) {
		t, err = time.ParseInLocation(AllDayLayout, part, loc)
		return t, true, err
	}
	t, err = time.Parse(TimedLayout, part)
	return t, false, err
}
