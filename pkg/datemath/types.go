package datemath

import "fmt"

// Layouts of the two FormattedDatePart shapes understood by calendar deep links.
const (
	AllDayLayout = "20060102"
	TimedLayout  = "20060102T150405Z"
)

// YearPolicy decides when a parsed year counts as stale and is moved to the current year.
type YearPolicy int

const (
	// AdjustAnyPastYear moves every year strictly before the current one.
	AdjustAnyPastYear YearPolicy = iota
	// AdjustOlderThanLastYear tolerates last year and only moves older years.
	AdjustOlderThanLastYear
)

// ParseYearPolicy maps a config value onto a YearPolicy. Empty means AdjustAnyPastYear.
func ParseYearPolicy(s string) (YearPolicy, error) {
	switch s {
	case "", "any_past_year":
		return AdjustAnyPastYear, nil
	case "older_than_last_year":
		return AdjustOlderThanLastYear, nil
	}
	return AdjustAnyPastYear, fmt.Errorf("unknown past year policy %q", s)
}

func (p YearPolicy) String() string {
	if p == AdjustOlderThanLastYear {
		return "older_than_last_year"
	}
	return "any_past_year"
}

func (p YearPolicy) stale(year, current int) bool {
	if p == AdjustOlderThanLastYear {
		return year < current-1
	}
	return year < current
}
