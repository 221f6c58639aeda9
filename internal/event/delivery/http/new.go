package http

import (
	"github.com/gin-gonic/gin"

	"text-to-calendar/internal/event"
	"text-to-calendar/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ExtractStream(c *gin.Context)
	Link(c *gin.Context)
	ICS(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
