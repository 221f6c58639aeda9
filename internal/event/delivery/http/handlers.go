package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"text-to-calendar/pkg/response"
)

// Extract godoc
// @Summary     Extract an event from text
// @Description Asks the language model for the event described in the text and builds its Google Calendar link.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Selected text"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Could not understand the response"
// @Failure     502 {object} response.Resp "Language model unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ExtractStream godoc
// @Summary     Extract an event from text, streaming the model answer
// @Description Server-sent events: "answer" events carry the cumulative model answer, then exactly one "result" or "error" event closes the stream.
// @Tags        Events
// @Accept      json
// @Produce     text/event-stream
// @Param       body body extractReq true "Selected text"
// @Success     200 {object} extractResp "result event payload"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/extract/stream [POST]
func (h *handler) ExtractStream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	output, err := h.uc.ExtractStream(ctx, req.toInput(), func(text string) {
		c.SSEvent("answer", text)
		c.Writer.Flush()
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractStream: %v", err)
		c.SSEvent("error", streamErrorResp{Message: errorMessage(h.mapError(err))})
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", h.newExtractResp(output))
	c.Writer.Flush()
}

// Link godoc
// @Summary     Build a calendar link
// @Description Builds the Google Calendar deep link for an event the user has reviewed. Years are kept as given when confirmed is true.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body linkReq true "Event"
// @Success     200 {object} linkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Event has no valid start date"
// @Router      /api/v1/events/link [POST]
func (h *handler) Link(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BuildLink(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.BuildLink: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLinkResp(output))
}

// ICS godoc
// @Summary     Export an event as iCalendar
// @Description Renders the event as an RFC 5545 file for calendars other than Google.
// @Tags        Events
// @Accept      json
// @Produce     text/calendar
// @Param       body body linkReq true "Event"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Event has no valid start date"
// @Router      /api/v1/events/ics [POST]
func (h *handler) ICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportICS(ctx, req.toICSInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// Schedule godoc
// @Summary     Add an event to Google Calendar
// @Description Inserts the event into the configured Google Calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Event"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Event has no valid start date"
// @Failure     503 {object} response.Resp "Google Calendar is not configured"
// @Router      /api/v1/events/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
