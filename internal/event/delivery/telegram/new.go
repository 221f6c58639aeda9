package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"text-to-calendar/internal/event"
	pkgLog "text-to-calendar/pkg/log"
	pkgTelegram "text-to-calendar/pkg/telegram"
)

// processTimeout bounds the background work for one update.
const processTimeout = 90 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  event.UseCase
	bot *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc event.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
