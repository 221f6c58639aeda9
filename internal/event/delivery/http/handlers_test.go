package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"text-to-calendar/config"
	"text-to-calendar/internal/event"
	"text-to-calendar/internal/middleware"
	"text-to-calendar/pkg/calendarlink"
	"text-to-calendar/pkg/log"
)

type mockUseCase struct {
	extractOut  event.ExtractOutput
	extractErr  error
	answers     []string
	linkOut     event.BuildLinkOutput
	linkErr     error
	linkIn      event.BuildLinkInput
	icsOut      event.ExportICSOutput
	icsErr      error
	scheduleOut event.ScheduleOutput
	scheduleErr error
}

func (m *mockUseCase) Extract(ctx context.Context, input event.ExtractInput) (event.ExtractOutput, error) {
	return m.extractOut, m.extractErr
}

func (m *mockUseCase) ExtractStream(ctx context.Context, input event.ExtractInput, onAnswer func(string)) (event.ExtractOutput, error) {
	for _, a := range m.answers {
		onAnswer(a)
	}
	return m.extractOut, m.extractErr
}

func (m *mockUseCase) BuildLink(ctx context.Context, input event.BuildLinkInput) (event.BuildLinkOutput, error) {
	m.linkIn = input
	return m.linkOut, m.linkErr
}

func (m *mockUseCase) ExportICS(ctx context.Context, input event.ExportICSInput) (event.ExportICSOutput, error) {
	return m.icsOut, m.icsErr
}

func (m *mockUseCase) Schedule(ctx context.Context, input event.ScheduleInput) (event.ScheduleOutput, error) {
	return m.scheduleOut, m.scheduleErr
}

func newTestEngine(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := middleware.New(log.NewNop(), &config.Config{})
	RegisterRoutes(engine.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return engine
}

func post(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

var lunchLink = event.BuildLinkOutput{
	URL: "https://calendar.google.com/calendar/render?action=TEMPLATE&dates=20260620%2F20260621&text=Lunch",
	Params: calendarlink.Params{
		Title: "Lunch",
		Dates: "20260620/20260621",
	},
	Range: calendarlink.Range{Start: "20260620", End: "20260621"},
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		uc         *mockUseCase
		wantCode   int
		wantStatus string
	}{
		{
			name: "found",
			body: `{"text":"Lunch on June 20"}`,
			uc: &mockUseCase{extractOut: event.ExtractOutput{
				Event: event.ExtractedEvent{Title: strPtr("Lunch"), StartDate: strPtr("2026-06-20")},
				Link:  &lunchLink,
			}},
			wantCode:   http.StatusOK,
			wantStatus: "found",
		},
		{
			name:       "empty",
			body:       `{"text":"hello there"}`,
			uc:         &mockUseCase{extractOut: event.ExtractOutput{Empty: true}},
			wantCode:   http.StatusOK,
			wantStatus: "empty",
		},
		{
			name:       "need start date",
			body:       `{"text":"Lunch sometime"}`,
			uc:         &mockUseCase{extractOut: event.ExtractOutput{NeedsStartDate: true}},
			wantCode:   http.StatusOK,
			wantStatus: "need_start_date",
		},
		{
			name:     "missing text",
			body:     `{"text":"  "}`,
			uc:       &mockUseCase{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unreadable answer",
			body:     `{"text":"Lunch"}`,
			uc:       &mockUseCase{extractErr: fmt.Errorf("%w: no json", event.ErrUnreadableResponse)},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "model down",
			body:     `{"text":"Lunch"}`,
			uc:       &mockUseCase{extractErr: fmt.Errorf("%w: timeout", event.ErrLLMFailed)},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestEngine(tt.uc), "/api/v1/events/extract", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantStatus == "" {
				return
			}

			var resp struct {
				Data extractResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Data.Status)
			}
			if tt.wantStatus == "found" && (resp.Data.Link == nil || resp.Data.Link.Params.Dates != "20260620/20260621") {
				t.Errorf("expected link in response, got %+v", resp.Data.Link)
			}
		})
	}
}

func TestExtractStream(t *testing.T) {
	uc := &mockUseCase{
		answers: []string{`{"title":`, `{"title":"Lunch","startDate":"2026-06-20"}`},
		extractOut: event.ExtractOutput{
			Event: event.ExtractedEvent{Title: strPtr("Lunch"), StartDate: strPtr("2026-06-20")},
			Link:  &lunchLink,
		},
	}
	w := post(newTestEngine(uc), "/api/v1/events/extract/stream", `{"text":"Lunch on June 20"}`)

	body := w.Body.String()
	if got := strings.Count(body, "event:answer"); got != 2 {
		t.Errorf("expected 2 answer events, got %d in %q", got, body)
	}
	if !strings.Contains(body, "event:result") || strings.Contains(body, "event:error") {
		t.Errorf("expected a single result event, got %q", body)
	}
	if strings.Index(body, "event:result") < strings.LastIndex(body, "event:answer") {
		t.Errorf("result must come after every answer: %q", body)
	}
}

func TestExtractStream_Error(t *testing.T) {
	uc := &mockUseCase{extractErr: event.ErrUnreadableResponse}
	w := post(newTestEngine(uc), "/api/v1/events/extract/stream", `{"text":"Lunch"}`)

	body := w.Body.String()
	if !strings.Contains(body, "event:error") || !strings.Contains(body, "could not understand the response") {
		t.Errorf("expected error event, got %q", body)
	}
	if strings.Contains(body, "event:result") {
		t.Errorf("unexpected result event: %q", body)
	}
}

func TestLink(t *testing.T) {
	uc := &mockUseCase{linkOut: lunchLink}
	w := post(newTestEngine(uc), "/api/v1/events/link",
		`{"event":{"title":"Lunch","startDate":"2025-06-20"},"original_text":"Lunch","confirmed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !uc.linkIn.Confirmed || *uc.linkIn.Event.StartDate != "2025-06-20" {
		t.Errorf("unexpected use case input: %+v", uc.linkIn)
	}

	uc = &mockUseCase{linkErr: event.ErrNeedStartDate}
	w = post(newTestEngine(uc), "/api/v1/events/link", `{"event":{"title":"Lunch"}}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestICS(t *testing.T) {
	uc := &mockUseCase{icsOut: event.ExportICSOutput{
		Filename:    "event-20260620.ics",
		ContentType: "text/calendar; charset=utf-8",
		Data:        []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
	}}
	w := post(newTestEngine(uc), "/api/v1/events/ics", `{"event":{"startDate":"2026-06-20"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "event-20260620.ics") {
		t.Errorf("unexpected Content-Disposition %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestSchedule(t *testing.T) {
	uc := &mockUseCase{scheduleErr: event.ErrCalendarNotConfigured}
	w := post(newTestEngine(uc), "/api/v1/events/schedule", `{"event":{"startDate":"2026-06-20"}}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}

	uc = &mockUseCase{scheduleOut: event.ScheduleOutput{EventID: "evt-1", HTMLLink: "https://calendar.google.com/event?eid=1", Link: lunchLink}}
	w = post(newTestEngine(uc), "/api/v1/events/schedule", `{"event":{"startDate":"2026-06-20"},"calendar_id":"team"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"event_id":"evt-1"`) {
		t.Errorf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
