package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/llmjson"
)

// decodeEvent reads the event keys out of the model's object. Title and
// description accept any scalar. Location must be a string; structured
// locations are dropped. Dates must be strings.
func (uc *implUseCase) decodeEvent(ctx context.Context, obj llmjson.Object) event.ExtractedEvent {
	ev := event.ExtractedEvent{
		Title:       scalarString(obj["title"]),
		Description: scalarString(obj["description"]),
		StartDate:   stringOnly(obj["startDate"]),
		EndDate:     stringOnly(obj["endDate"]),
		Location:    stringOnly(obj["location"]),
	}

	if v, ok := obj["location"]; ok && v != nil && ev.Location == nil {
		uc.l.Warnf(ctx, "Extract: dropping non-string location of type %T", v)
	}
	return ev
}

func stringOnly(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func scalarString(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	case json.Number:
		s = t.String()
	default:
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
