package telegram

import (
	"context"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"text-to-calendar/internal/event"
	pkgResponse "text-to-calendar/pkg/response"
	pkgTelegram "text-to-calendar/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 immediately and runs the model call in the background,
// since Telegram retries webhooks that do not respond within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	// Keep request-scoped values (request id) but not the cancellation.
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()

		if err := h.processMessage(ctx, msg); err != nil {
			h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(ctx, msg.Chat.ID, msgGenericFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Content())
	if text == "" {
		return nil
	}

	command, args := splitCommand(text)
	switch command {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgStart)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	case "/ics":
		if args == "" && msg.ReplyToMessage != nil {
			args = strings.TrimSpace(msg.ReplyToMessage.Content())
		}
		if args == "" {
			return h.bot.SendMessage(ctx, msg.Chat.ID, msgICSUsage)
		}
		return h.sendICS(ctx, msg.Chat.ID, args)
	case "":
		return h.sendLink(ctx, msg.Chat.ID, text)
	default:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}
}

// sendLink extracts the event from text and replies with the calendar button.
func (h *handler) sendLink(ctx context.Context, chatID int64, text string) error {
	out, ok, err := h.extract(ctx, chatID, text)
	if err != nil || !ok {
		return err
	}
	return h.bot.SendLink(ctx, chatID, summary(out), buttonOpenCalendar, out.Link.URL)
}

// sendICS extracts the event from text and replies with an .ics file.
func (h *handler) sendICS(ctx context.Context, chatID int64, text string) error {
	out, ok, err := h.extract(ctx, chatID, text)
	if err != nil || !ok {
		return err
	}

	file, err := h.uc.ExportICS(ctx, event.ExportICSInput{
		BuildLinkInput: event.BuildLinkInput{Event: out.Event, OriginalText: text},
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: ExportICS failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}

	return h.bot.SendDocument(ctx, chatID, pkgTelegram.Document{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
		Caption:     summary(out),
	})
}

// extract runs the pipeline and answers the user itself for every outcome
// without a link. ok is true when out.Link is set.
func (h *handler) extract(ctx context.Context, chatID int64, text string) (event.ExtractOutput, bool, error) {
	out, err := h.uc.Extract(ctx, event.ExtractInput{Text: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Extract failed: %v", err)
		return out, false, h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}

	switch {
	case out.Empty:
		return out, false, h.bot.SendMessage(ctx, chatID, msgNoEvent)
	case out.NeedsStartDate, out.Link == nil:
		return out, false, h.bot.SendMessage(ctx, chatID, msgNeedStartDate)
	}
	return out, true, nil
}

// splitCommand splits "/cmd@bot args" into "/cmd" and "args". command is ""
// for plain text.
func splitCommand(text string) (command, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	command, args = text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		command, args = text[:i], text[i:]
	}
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.TrimSpace(args)
}
