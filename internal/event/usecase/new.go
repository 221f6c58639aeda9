package usecase

import (
	"context"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/datemath"
	"text-to-calendar/pkg/gcalendar"
	"text-to-calendar/pkg/llmprovider"
	pkgLog "text-to-calendar/pkg/log"
)

// MaxTextLength bounds the selection sent to the model.
const MaxTextLength = 20000

// AnswerGenerator streams a model answer. *llmprovider.Manager implements it.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, prompt string, onEvent func(llmprovider.Event)) error
}

// CalendarClient inserts events. *gcalendar.Client implements it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        AnswerGenerator
	builder    *calendarlink.Builder
	normalizer *datemath.Normalizer
	calendar   CalendarClient
	calendarID string
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase instance. calendar may be nil, in which
// case Schedule reports event.ErrCalendarNotConfigured.
func New(
	l pkgLog.Logger,
	llm AnswerGenerator,
	builder *calendarlink.Builder,
	calendar CalendarClient,
	calendarID string,
) event.UseCase {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		builder:    builder,
		normalizer: builder.Normalizer(),
		calendar:   calendar,
		calendarID: calendarID,
	}
}
