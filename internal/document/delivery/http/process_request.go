package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDownloadReq binds the download query parameters.
func (h *handler) processDownloadReq(c *gin.Context) (downloadReq, error) {
	var req downloadReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
