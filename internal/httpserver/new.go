package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"voice-worklog/internal/middleware"
	"voice-worklog/internal/worklog"
	"voice-worklog/pkg/log"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Readiness
	db Pinger

	// Worklog domain
	worklogUC worklog.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config

	// DB is optional; when set /ready pings it.
	DB Pinger

	// Worklog domain
	WorklogUseCase worklog.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.Middleware),
		db:          cfg.DB,
		worklogUC:   cfg.WorklogUseCase,
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
	if srv.worklogUC == nil {
		return errors.New("worklog usecase is required")
	}
	return nil
}
