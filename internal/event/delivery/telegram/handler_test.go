package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"text-to-calendar/internal/event"
	"text-to-calendar/internal/event/delivery/telegram"
	"text-to-calendar/pkg/log"
	pkgTelegram "text-to-calendar/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockEventUseCase struct {
	extractOut event.ExtractOutput
	extractErr error
	icsOut     event.ExportICSOutput
	icsErr     error

	mu       sync.Mutex
	lastText string
}

func (m *mockEventUseCase) Extract(ctx context.Context, input event.ExtractInput) (event.ExtractOutput, error) {
	m.mu.Lock()
	m.lastText = input.Text
	m.mu.Unlock()
	return m.extractOut, m.extractErr
}
func (m *mockEventUseCase) ExtractStream(ctx context.Context, input event.ExtractInput, onAnswer func(string)) (event.ExtractOutput, error) {
	return m.Extract(ctx, input)
}
func (m *mockEventUseCase) BuildLink(ctx context.Context, input event.BuildLinkInput) (event.BuildLinkOutput, error) {
	return event.BuildLinkOutput{}, nil
}
func (m *mockEventUseCase) ExportICS(ctx context.Context, input event.ExportICSInput) (event.ExportICSOutput, error) {
	return m.icsOut, m.icsErr
}
func (m *mockEventUseCase) Schedule(ctx context.Context, input event.ScheduleInput) (event.ScheduleOutput, error) {
	return event.ScheduleOutput{}, nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type captured struct {
	mu        sync.Mutex
	messages  []string
	buttons   []string
	documents []string
}

func (c *captured) snapshot() ([]string, []string, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...), append([]string(nil), c.buttons...), append([]string(nil), c.documents...)
}

func (c *captured) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) + len(c.documents)
}

func newTestEnv(t *testing.T, uc *mockEventUseCase) (*gin.Engine, *captured) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	got := &captured{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.mu.Lock()
		defer got.mu.Unlock()

		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var req pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			got.messages = append(got.messages, req.Text)
			if req.ReplyMarkup != nil {
				got.buttons = append(got.buttons, req.ReplyMarkup.InlineKeyboard[0][0].URL)
			}
		case strings.HasSuffix(r.URL.Path, "/sendDocument"):
			if err := r.ParseMultipartForm(1 << 20); err == nil {
				_, hdr, err := r.FormFile("document")
				if err == nil {
					got.documents = append(got.documents, hdr.Filename)
				}
			}
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	engine := gin.New()
	h := telegram.New(log.NewNop(), uc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)
	return engine, got
}

func sendWebhook(engine *gin.Engine, msg *pkgTelegram.Message) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{UpdateID: 1, Message: msg}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func textMessage(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		Chat:      &pkgTelegram.Chat{ID: 123},
		From:      &pkgTelegram.User{ID: 456},
		Text:      text,
	}
}

func waitFor(got *captured, atLeast int) {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && got.count() < atLeast {
		time.Sleep(10 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

func strPtr(s string) *string { return &s }

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	engine, _ := newTestEnv(t, &mockEventUseCase{})

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	engine, _ := newTestEnv(t, &mockEventUseCase{})
	if w := sendWebhook(engine, nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleCommands(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "Google Calendar link"},
		{"/help@EventLinkBot", "Team lunch"},
		{"/ics", "Send /ics followed by the text"},
		{"/unknown", "Team lunch"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			engine, got := newTestEnv(t, &mockEventUseCase{})
			if w := sendWebhook(engine, textMessage(tt.text)); w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			waitFor(got, 1)
			msgs, _, _ := got.snapshot()
			assertContains(t, msgs, tt.want)
		})
	}
}

func TestHandleText_Found(t *testing.T) {
	url := "https://calendar.google.com/calendar/render?action=TEMPLATE&dates=20260620&text=Lunch"
	uc := &mockEventUseCase{extractOut: event.ExtractOutput{
		Event: event.ExtractedEvent{Title: strPtr("Lunch"), StartDate: strPtr("2026-06-20"), Location: strPtr("Pho 24")},
		Link:  &event.BuildLinkOutput{URL: url},
	}}
	engine, got := newTestEnv(t, uc)

	sendWebhook(engine, textMessage("Lunch at Pho 24 on June 20"))
	waitFor(got, 1)

	msgs, buttons, _ := got.snapshot()
	assertContains(t, msgs, "Lunch")
	assertContains(t, msgs, "Pho 24")
	if len(buttons) != 1 || buttons[0] != url {
		t.Errorf("expected calendar button, got %v", buttons)
	}
}

func TestHandleText_Outcomes(t *testing.T) {
	tests := []struct {
		name string
		uc   *mockEventUseCase
		want string
	}{
		{"empty", &mockEventUseCase{extractOut: event.ExtractOutput{Empty: true}}, "No event detected"},
		{"no start date", &mockEventUseCase{extractOut: event.ExtractOutput{NeedsStartDate: true}}, "no date I could use"},
		{"unreadable", &mockEventUseCase{extractErr: event.ErrUnreadableResponse}, "could not understand the response"},
		{"llm down", &mockEventUseCase{extractErr: event.ErrLLMFailed}, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, got := newTestEnv(t, tt.uc)
			sendWebhook(engine, textMessage("something"))
			waitFor(got, 1)
			msgs, buttons, _ := got.snapshot()
			assertContains(t, msgs, tt.want)
			if len(buttons) != 0 {
				t.Errorf("expected no button, got %v", buttons)
			}
		})
	}
}

func TestHandleICS_Reply(t *testing.T) {
	uc := &mockEventUseCase{
		extractOut: event.ExtractOutput{
			Event: event.ExtractedEvent{Title: strPtr("Lunch"), StartDate: strPtr("2026-06-20")},
			Link:  &event.BuildLinkOutput{URL: "https://calendar.google.com/calendar/render"},
		},
		icsOut: event.ExportICSOutput{
			Filename:    "event-20260620.ics",
			ContentType: "text/calendar; charset=utf-8",
			Data:        []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		},
	}
	engine, got := newTestEnv(t, uc)

	msg := textMessage("/ics")
	msg.ReplyToMessage = &pkgTelegram.Message{Text: "Lunch on June 20"}
	sendWebhook(engine, msg)
	waitFor(got, 1)

	_, _, docs := got.snapshot()
	if len(docs) != 1 || docs[0] != "event-20260620.ics" {
		t.Errorf("expected ics document, got %v", docs)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.lastText != "Lunch on June 20" {
		t.Errorf("expected replied-to text to be extracted, got %q", uc.lastText)
	}
}
