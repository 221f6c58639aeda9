package http

import (
	"github.com/gin-gonic/gin"

	"text-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that call the model are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.POST("/extract/stream", mw.RateLimit(), h.ExtractStream)
		events.POST("/link", h.Link)
		events.POST("/ics", h.ICS)
		events.POST("/schedule", mw.RateLimit(), h.Schedule)
	}
}
