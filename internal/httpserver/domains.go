package httpserver

import (
	"context"

	documentHTTP "scheduling-optimizer/internal/document/delivery/http"
	documentUC "scheduling-optimizer/internal/document/usecase"
	plannerHTTP "scheduling-optimizer/internal/planner/delivery/http"
	plannerUC "scheduling-optimizer/internal/planner/usecase"
	reportHTTP "scheduling-optimizer/internal/report/delivery/http"
	reportUC "scheduling-optimizer/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

// setupPlannerDomain initializes the scheduling-suggestion domain and
// registers its routes under /api/v1/planner.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := plannerUC.New(srv.l, srv.cfg.Planner, srv.calendar, srv.cfg.GoogleCalendar.CalendarID)
	h := plannerHTTP.New(srv.l, uc)

	plannerHTTP.RegisterRoutes(api.Group("/planner"), h)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Planner domain registered (calendar export disabled)")
	} else {
		srv.l.Infof(ctx, "Planner domain registered")
	}
	return nil
}

// setupReportDomain initializes the production KPI report domain and
// registers its routes under /api/v1/reports.
func (srv HTTPServer) setupReportDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := reportUC.New(srv.l)
	h := reportHTTP.New(srv.l, uc)

	reportHTTP.RegisterRoutes(api.Group("/reports"), h)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}

// setupDocumentDomain initializes the PDF browser domain and registers
// its routes under /api/v1/documents.
func (srv HTTPServer) setupDocumentDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := documentUC.New(srv.docRepo, srv.l, srv.cfg.Documents.BaseDir)
	h := documentHTTP.New(srv.l, uc)

	documentHTTP.RegisterRoutes(api.Group("/documents"), h)

	srv.l.Infof(ctx, "Document domain registered")
	return nil
}
