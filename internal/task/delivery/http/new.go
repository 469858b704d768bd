package http

import (
	"github.com/gin-gonic/gin"

	"checklist-sync/internal/task"
	"checklist-sync/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	UpdateDescription(c *gin.Context)
	AddItem(c *gin.Context)
	ToggleItem(c *gin.Context)
	RemoveItem(c *gin.Context)
	SetStatus(c *gin.Context)
	SwitchMode(c *gin.Context)
	Rows(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
