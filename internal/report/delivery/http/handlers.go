package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/pkg/response"
)

// Generate godoc
// @Summary     Generate the KPI production report
// @Description Computes per-row variance and attainment plus headline KPIs from the submitted line/shift records.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Production rows"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/report/kpi [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Seed godoc
// @Summary     Seed rows for the KPI editor
// @Description Returns the sample line/shift records a client can prefill its table with.
// @Tags        Report
// @Produce     json
// @Success     200 {object} seedResp
// @Router      /api/v1/report/kpi/seed [GET]
func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Seed(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Seed: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSeedResp(output))
}
