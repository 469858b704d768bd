package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/task"
	"checklist-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	apiKey         string
	requestsPerMin int
	trustedProxies []string

	// Domains
	taskUC       task.UseCase
	checklistSvc checklist.Service
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// APIKey protects /api/v1 when set.
	APIKey string

	// RequestsPerMin is the per-client limit; 0 disables rate limiting.
	RequestsPerMin int

	// TrustedProxies may set X-Forwarded-For. Empty means the client IP is
	// always the connection's remote address.
	TrustedProxies []string

	TaskUseCase  task.UseCase
	ChecklistSvc checklist.Service
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		apiKey:         cfg.APIKey,
		requestsPerMin: cfg.RequestsPerMin,
		trustedProxies: cfg.TrustedProxies,
		taskUC:         cfg.TaskUseCase,
		checklistSvc:   cfg.ChecklistSvc,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Client IPs key the rate limiter, so forwarding headers are only
	// honoured from configured proxies.
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("httpserver.New: trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.checklistSvc == nil {
		return errors.New("checklist service is required")
	}
	return nil
}
