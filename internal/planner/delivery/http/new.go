package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/planner"
	"scheduling-optimizer/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
	Detail(c *gin.Context)
	Estimate(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
