package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-optimizer/internal/planner"
)

// processSuggestReq binds and validates the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEstimateReq binds and validates the estimate request body.
func (h *handler) processEstimateReq(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds and validates the export request body + URI param.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.PlanID = c.Param("id")

	if req.StartDate != "" {
		start, err := time.Parse(planner.DueDateLayout, req.StartDate)
		if err != nil {
			return req, fmt.Errorf("start_date must be YYYY-MM-DD (got '%s')", req.StartDate)
		}
		req.start = start
	}
	return req, req.validate()
}
