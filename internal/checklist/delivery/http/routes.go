package http

import (
	"checklist-sync/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the stateless engine endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cl := rg.Group("/checklist", mw.Auth())
	{
		cl.POST("/parse", h.Parse)
		cl.POST("/serialize", h.Serialize)
		cl.POST("/progress", h.Progress)
	}
}
