package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	checklistHTTP "checklist-sync/internal/checklist/delivery/http"
	"checklist-sync/internal/middleware"
	taskHTTP "checklist-sync/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupChecklistDomain registers the stateless /api/v1/checklist endpoints.
func (srv *HTTPServer) setupChecklistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := checklistHTTP.New(srv.l, srv.checklistSvc)
	checklistHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Checklist domain registered")
	return nil
}
