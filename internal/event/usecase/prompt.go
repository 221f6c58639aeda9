package usecase

import (
	"strings"
	"time"
)

const extractionPrompt = `You extract a single calendar event from text a user selected on a web page.

Today's date is {{today}} ({{weekday}}). Use it to resolve relative dates such as "tomorrow" or "next Friday", and assume the nearest upcoming date when the year is not stated.

Respond with ONLY a JSON object, no markdown and no explanation, with exactly these keys:
{
  "title": string or null,
  "startDate": string or null,
  "endDate": string or null,
  "location": string or null,
  "description": string or null
}

Rules:
- Use null for anything the text does not state.
- For an all-day event write dates as YYYY-MM-DD.
- For an event with a time write YYYY-MM-DDTHH:mm:ss in the event's local time, with no timezone suffix and no "Z".
- "location" must be a single flat string (for example "Room 4, 12 Main St"), never an object or a list.
- "description" is a short summary of the event, not a copy of the text.
- If the text describes no event at all, respond with {}.

Text:
"""
{{text}}
"""`

// buildPrompt fills the extraction template with the selection and today's date.
func buildPrompt(text string, today time.Time) string {
	r := strings.NewReplacer(
		"{{today}}", today.Format("2006-01-02"),
		"{{weekday}}", today.Weekday().String(),
		"{{text}}", text,
	)
	return r.Replace(extractionPrompt)
}
