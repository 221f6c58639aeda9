package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"text-to-calendar/config"
	eventHTTP "text-to-calendar/internal/event/delivery/http"
	tgDelivery "text-to-calendar/internal/event/delivery/telegram"
	"text-to-calendar/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Event domain
	eventHandler    eventHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// AppConfig feeds the middleware (rate limit, CORS, webhook secret).
	AppConfig *config.Config

	// Event domain
	EventHandler    eventHTTP.Handler
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	appCfg := cfg.AppConfig
	if appCfg == nil {
		appCfg = &config.Config{}
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		cfg:             appCfg,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		eventHandler:    cfg.EventHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
