package http

import (
	"strings"

	"text-to-calendar/internal/event"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r extractReq) toInput() event.ExtractInput {
	return event.ExtractInput{Text: r.Text}
}

type eventReq struct {
	Title       *string `json:"title"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (r eventReq) toEvent() event.ExtractedEvent {
	return event.ExtractedEvent{
		Title:       r.Title,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		Description: r.Description,
	}
}

type linkReq struct {
	Event        eventReq `json:"event"`
	OriginalText string   `json:"original_text"`
	Confirmed    bool     `json:"confirmed"`
}

// A missing start date is left to the use case, which answers 422.
func (r linkReq) validate() error { return nil }

func (r linkReq) toInput() event.BuildLinkInput {
	return event.BuildLinkInput{
		Event:        r.Event.toEvent(),
		OriginalText: r.OriginalText,
		Confirmed:    r.Confirmed,
	}
}

func (r linkReq) toICSInput() event.ExportICSInput {
	return event.ExportICSInput{BuildLinkInput: r.toInput()}
}

type scheduleReq struct {
	linkReq
	CalendarID string `json:"calendar_id"`
}

func (r scheduleReq) toInput() event.ScheduleInput {
	return event.ScheduleInput{
		BuildLinkInput: r.linkReq.toInput(),
		CalendarID:     r.CalendarID,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title       *string `json:"title"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func newEventResp(e event.ExtractedEvent) eventResp {
	return eventResp{
		Title:       e.Title,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Description: e.Description,
	}
}

type paramsResp struct {
	Text     string `json:"text"`
	Dates    string `json:"dates"`
	Location string `json:"location,omitempty"`
	Details  string `json:"details,omitempty"`
}

type linkResp struct {
	URL    string     `json:"url"`
	Params paramsResp `json:"params"`
	Mixed  bool       `json:"mixed"`
}

func newLinkResp(out event.BuildLinkOutput) linkResp {
	return linkResp{
		URL: out.URL,
		Params: paramsResp{
			Text:     out.Params.Title,
			Dates:    out.Params.Dates,
			Location: out.Params.Location,
			Details:  out.Params.Details,
		},
		Mixed: out.Mixed(),
	}
}

type extractResp struct {
	Status string    `json:"status"`
	Event  eventResp `json:"event"`
	Link   *linkResp `json:"link,omitempty"`
}

func (h *handler) newExtractResp(out event.ExtractOutput) extractResp {
	resp := extractResp{
		Status: string(out.Status()),
		Event:  newEventResp(out.Event),
	}
	if out.Link != nil {
		link := newLinkResp(*out.Link)
		resp.Link = &link
	}
	return resp
}

type scheduleResp struct {
	EventID  string   `json:"event_id"`
	HTMLLink string   `json:"html_link"`
	Link     linkResp `json:"link"`
}

func (h *handler) newScheduleResp(out event.ScheduleOutput) scheduleResp {
	return scheduleResp{
		EventID:  out.EventID,
		HTMLLink: out.HTMLLink,
		Link:     newLinkResp(out.Link),
	}
}

type streamErrorResp struct {
	Message string `json:"message"`
}
