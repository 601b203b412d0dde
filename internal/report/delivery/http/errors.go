package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/report"
	"scheduling-optimizer/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case report.ErrNoRows:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
