package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-optimizer/pkg/response"
)

// List godoc
// @Summary     List PDF documents
// @Description Recursively scans a directory tree and returns every PDF found, sorted by relative path.
// @Tags        Document
// @Produce     json
// @Param       dir query string false "Directory to scan (defaults to the configured base directory)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/documents/pdfs [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Download godoc
// @Summary     Download a PDF document
// @Description Streams a single PDF as an attachment. The path must stay inside the scanned directory.
// @Tags        Document
// @Produce     application/pdf
// @Param       dir  query string false "Directory the path is relative to"
// @Param       path query string true  "Relative path of the PDF"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/documents/pdfs/download [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDownloadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Open(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		h.mapError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(output.AbsPath, output.Name)
}
