package usecase

import (
	"testing"
	"time"

	"text-to-calendar/config"
	"text-to-calendar/pkg/datemath"
)

func TestNewLinkBuilder(t *testing.T) {
	b, err := NewLinkBuilder(config.CalendarConfig{
		Timezone:       "UTC",
		PastYearPolicy: "older_than_last_year",
	})
	if err != nil {
		t.Fatalf("NewLinkBuilder: %v", err)
	}
	if b.Normalizer().Policy() != datemath.AdjustOlderThanLastYear {
		t.Errorf("expected policy to be applied, got %v", b.Normalizer().Policy())
	}
	if b.Normalizer().Location() != time.UTC {
		t.Errorf("expected UTC, got %v", b.Normalizer().Location())
	}

	if _, err := NewLinkBuilder(config.CalendarConfig{PastYearPolicy: "sometimes"}); err == nil {
		t.Errorf("expected error for unknown policy")
	}
	if _, err := NewLinkBuilder(config.CalendarConfig{Timezone: "Mars/Olympus_Mons"}); err == nil {
		t.Errorf("expected error for unknown timezone")
	}
}
