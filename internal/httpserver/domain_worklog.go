package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	worklogHTTP "voice-worklog/internal/worklog/delivery/http"
)

// setupWorklogDomain registers /api/v1/worklogs. Repositories and the
// usecase are built in cmd/api since they own pools and clients.
func (srv HTTPServer) setupWorklogDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := worklogHTTP.New(srv.l, srv.worklogUC)
	worklogHTTP.RegisterRoutes(api.Group("/worklogs"), h, srv.mw)

	srv.l.Infof(ctx, "Worklog domain registered")
	return nil
}
