package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scheduling-optimizer/config"
	documentRepo "scheduling-optimizer/internal/document/repository"
	plannerUC "scheduling-optimizer/internal/planner/usecase"
	"scheduling-optimizer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Planner domain
	calendar plannerUC.CalendarClient // nil when calendar export is not configured

	// Document domain
	docRepo documentRepo.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Planner domain
	Calendar plannerUC.CalendarClient

	// Document domain
	DocumentRepo documentRepo.Repository
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
		cfg:         cfg.AppConfig,
		calendar:    cfg.Calendar,
		docRepo:     cfg.DocumentRepo,
	}

	if err := srv.validate(); err != nil {
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
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.docRepo == nil {
		return errors.New("document repository is required")
	}
	return nil
}
