package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	pdfs := rg.Group("/pdfs")
	{
		pdfs.GET("", h.List)
		pdfs.GET("/download", h.Download)
	}
}
