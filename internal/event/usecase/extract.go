package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/llmjson"
	"text-to-calendar/pkg/llmprovider"
)

// Extract asks the model for an event in the selected text.
func (uc *implUseCase) Extract(ctx context.Context, input event.ExtractInput) (event.ExtractOutput, error) {
	return uc.ExtractStream(ctx, input, nil)
}

// ExtractStream asks the model for an event, forwarding every cumulative
// answer to onAnswer, and interprets the final answer once the stream is done.
func (uc *implUseCase) ExtractStream(ctx context.Context, input event.ExtractInput, onAnswer func(text string)) (event.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return event.ExtractOutput{}, event.ErrEmptyText
	}
	if utf8.RuneCountInString(input.Text) > MaxTextLength {
		return event.ExtractOutput{}, event.ErrTextTooLong
	}

	uc.l.Infof(ctx, "Extract: input_length=%d", len(input.Text))

	prompt := buildPrompt(input.Text, uc.normalizer.Today())

	// Scoped to this call; concurrent extractions never share it.
	var answer string
	err := uc.llm.GenerateAnswer(ctx, prompt, func(e llmprovider.Event) {
		switch e.Type {
		case llmprovider.EventAnswer:
			answer = e.Text
			if onAnswer != nil {
				onAnswer(e.Text)
			}
		case llmprovider.EventDone:
			answer = e.Text
		}
	})
	if err != nil {
		uc.l.Errorf(ctx, "Extract: model request failed: %v", err)
		return event.ExtractOutput{}, fmt.Errorf("%w: %v", event.ErrLLMFailed, err)
	}

	return uc.interpret(ctx, input.Text, answer)
}

// interpret turns the final model answer into an extraction outcome.
func (uc *implUseCase) interpret(ctx context.Context, text, answer string) (event.ExtractOutput, error) {
	obj, err := llmjson.Extract(answer)
	if err != nil {
		uc.l.Errorf(ctx, "Extract: unreadable model answer: %v raw=%q", err, answer)
		return event.ExtractOutput{Answer: answer}, fmt.Errorf("%w: %w", event.ErrUnreadableResponse, err)
	}

	ev := uc.decodeEvent(ctx, obj)
	out := event.ExtractOutput{Event: ev, Answer: answer}
	if ev.IsEmpty() {
		uc.l.Infof(ctx, "Extract: no event detected")
		out.Empty = true
		return out, nil
	}

	link, err := uc.buildLink(ctx, ev, text, true)
	if errors.Is(err, calendarlink.ErrNoValidStartDate) {
		uc.l.Infof(ctx, "Extract: event %q has no usable start date", deref(ev.Title))
		out.NeedsStartDate = true
		return out, nil
	}
	if err != nil {
		return out, err
	}

	out.Link = &link
	return out, nil
}
