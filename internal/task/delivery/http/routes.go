package http

import (
	"checklist-sync/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)

		tasks.PUT("/:id/description", h.UpdateDescription)
		tasks.PUT("/:id/status", h.SetStatus)
		tasks.PUT("/:id/mode", h.SwitchMode)
		tasks.GET("/:id/rows", h.Rows)

		tasks.POST("/:id/items", h.AddItem)
		tasks.PATCH("/:id/items/:index", h.ToggleItem)
		tasks.DELETE("/:id/items/:index", h.RemoveItem)
	}
}
