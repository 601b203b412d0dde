package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	kpi := rg.Group("/kpi")
	{
		kpi.POST("", h.Generate)
		kpi.GET("/seed", h.Seed)
	}
}
