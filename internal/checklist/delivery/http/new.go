package http

import (
	"github.com/gin-gonic/gin"

	"checklist-sync/internal/checklist"
	"checklist-sync/pkg/log"
)

// Handler exposes the checklist engine without touching any stored task.
type Handler interface {
	Parse(c *gin.Context)
	Serialize(c *gin.Context)
	Progress(c *gin.Context)
}

type handler struct {
	l   log.Logger
	svc checklist.Service
}

func New(l log.Logger, svc checklist.Service) Handler {
	return &handler{l: l, svc: svc}
}
