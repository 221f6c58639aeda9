package telegram

import (
	"errors"
	"strings"

	"text-to-calendar/internal/event"
)

const (
	msgStart = "👋 Send me any text that mentions an event (an email, a chat message, an invitation) and I will turn it into a Google Calendar link.\n\nCommands:\n/help shows this message\n/ics <text> replies with an .ics file instead of a link"
	msgHelp  = "Paste or forward text such as:\n\"Team lunch at Pho 24 next Friday 12:30-13:30\"\n\nI reply with a button that opens Google Calendar with the event filled in. Reply /ics to a message to get a calendar file."

	msgNoEvent        = "🤷 No event detected in that text. Try including a title and a date."
	msgNeedStartDate  = "📅 I found an event but no date I could use. Please resend it with a start date."
	msgUnreadable     = "😕 Sorry, I could not understand the response. Please try again."
	msgUnavailable    = "⚠️ The assistant is unavailable right now. Please try again later."
	msgTooLong        = "✂️ That text is too long. Please send a shorter selection."
	msgICSUsage       = "Send /ics followed by the text, or reply /ics to a message."
	msgGenericFailure = "⚠️ Something went wrong while processing your message. Please try again."

	buttonOpenCalendar = "Add to Google Calendar"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, event.ErrUnreadableResponse):
		return msgUnreadable
	case errors.Is(err, event.ErrNeedStartDate):
		return msgNeedStartDate
	case errors.Is(err, event.ErrLLMFailed):
		return msgUnavailable
	case errors.Is(err, event.ErrTextTooLong):
		return msgTooLong
	default:
		return msgGenericFailure
	}
}

// summary renders the reply text shown above the calendar button.
func summary(out event.ExtractOutput) string {
	var b strings.Builder
	b.WriteString("📅 ")
	if out.Event.Title != nil && strings.TrimSpace(*out.Event.Title) != "" {
		b.WriteString(strings.TrimSpace(*out.Event.Title))
	} else {
		b.WriteString("Event")
	}
	if out.Event.StartDate != nil {
		b.WriteString("\n🕒 ")
		b.WriteString(*out.Event.StartDate)
		if out.Event.EndDate != nil && *out.Event.EndDate != "" {
			b.WriteString(" → ")
			b.WriteString(*out.Event.EndDate)
		}
	}
	if out.Event.Location != nil && strings.TrimSpace(*out.Event.Location) != "" {
		b.WriteString("\n📍 ")
		b.WriteString(strings.TrimSpace(*out.Event.Location))
	}
	return b.String()
}
