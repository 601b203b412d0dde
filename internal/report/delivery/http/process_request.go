package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate report request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
