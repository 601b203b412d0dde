package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/pkg/response"
)

// Suggest godoc
// @Summary     Suggest a schedule
// @Description Parses raw task lines, sorts them by due date, and greedily distributes them across days. Malformed lines are reported in the payload, never as a request failure.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Raw task text and daily capacity"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Detail godoc
// @Summary     Get a suggested plan
// @Description Returns a previously suggested plan by its ID.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/suggestions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Estimate godoc
// @Summary     What-if delivery estimate
// @Description Computes total effort and estimated days from a task count, average hours per task, and daily capacity.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body estimateReq true "What-if parameters"
// @Success     200 {object} estimateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Estimate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Estimate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// Export godoc
// @Summary     Export a plan to Google Calendar
// @Description Creates one all-day calendar event per scheduled day, starting at start_date.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Plan ID"
// @Param       body body exportReq true "Export parameters"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/suggestions/{id}/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExportResp(output))
}
