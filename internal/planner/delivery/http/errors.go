package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/planner"
	"scheduling-optimizer/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown
// errors become opaque 500s.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case planner.ErrPlanNotFound:
		response.NotFound(c, err)
	case planner.ErrInvalidCapacity, planner.ErrCapacityTooLarge, planner.ErrInvalidEstimate, planner.ErrCalendarUnavailable:
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
