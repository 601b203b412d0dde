package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/document"
	"scheduling-optimizer/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown
// errors become opaque 500s.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case document.ErrDirNotFound, document.ErrFileNotFound:
		response.NotFound(c, err)
	case document.ErrNotADirectory, document.ErrPathEscapes:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
