package usecase

import (
	"fmt"

	"text-to-calendar/config"
	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
)

// NewLinkBuilder builds the date normalizer and link builder from the calendar config.
func NewLinkBuilder(cfg config.CalendarConfig, opts ...datemath.Option) (*calendarlink.Builder, error) {
	policy, err := datemath.ParseYearPolicy(cfg.PastYearPolicy)
	if err != nil {
		return nil, fmt.Errorf("calendar.past_year_policy: %w", err)
	}

	normalizer, err := datemath.NewNormalizer(cfg.Timezone, append([]datemath.Option{datemath.WithYearPolicy(policy)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone: %w", err)
	}

	return calendarlink.New(normalizer, calendarlink.Config{
		BaseURL:       cfg.BaseURL,
		FallbackTitle: cfg.FallbackTitle,
	}), nil
}
