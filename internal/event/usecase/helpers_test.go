package usecase

import (
	"context"
	"sync"
	"time"

	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
	"text-to-calendar/pkg/gcalendar"
	"text-to-calendar/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator replays chunks as cumulative answer events.
type mockGenerator struct {
	chunks []string
	err    error
	prompt string
}

func (m *mockGenerator) GenerateAnswer(ctx context.Context, prompt string, onEvent func(llmprovider.Event)) error {
	m.prompt = prompt
	if m.err != nil {
		onEvent(llmprovider.Event{Type: llmprovider.EventError, Err: m.err})
		return m.err
	}
	var text string
	for _, c := range m.chunks {
		text += c
		onEvent(llmprovider.Event{Type: llmprovider.EventAnswer, Text: text})
	}
	onEvent(llmprovider.Event{Type: llmprovider.EventDone, Text: text})
	return nil
}

type mockCalendar struct {
	req gcalendar.CreateEventRequest
	err error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/event?eid=1", AllDay: req.AllDay}, nil
}

var testZone = time.FixedZone("+07", 7*3600)

// newTestUseCase pins "now" to 2026-06-15 10:00 in UTC+7.
func newTestUseCase(gen AnswerGenerator, cal CalendarClient) (*implUseCase, *mockLogger) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, testZone)
	n := datemath.NewNormalizerIn(testZone, datemath.WithClock(func() time.Time { return now }))
	l := &mockLogger{}
	uc := New(l, gen, calendarlink.New(n, calendarlink.Config{}), cal, "").(*implUseCase)
	return uc, l
}

func strp(s string) *string { return &s }
