package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.POST("", h.Suggest)
		suggestions.GET("/:id", h.Detail)
		suggestions.POST("/:id/export", h.Export)
	}
	rg.POST("/estimate", h.Estimate)
}
