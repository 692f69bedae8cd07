package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/middleware"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/respond"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the admin router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/suggestions/analysis", h.getReport)
}

func (h *Handler) getReport(c *gin.Context) {
	report, err := h.Svc.Report(c.Request.Context())
	if err != nil {
		telemetry.Error("analysis.report_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "suggestion data is currently unavailable", nil)
		return
	}

	respond.OK(c, report)
}
