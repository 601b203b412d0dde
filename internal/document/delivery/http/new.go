package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/pkg/log"
)

// Handler is the public interface for the document HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Download(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for the document domain.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
