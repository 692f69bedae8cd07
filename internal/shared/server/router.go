package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/analysis"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/services/health"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/config"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/metrics"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/middleware"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/respond"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	SuggestionsHandler *suggestions.Handler
	AnalysisHandler    *analysis.Handler
	UsersHandler       *users.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.SuggestionsHandler != nil {
		deps.SuggestionsHandler.RegisterRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(
		middleware.AdminAuth(deps.Config.AdminAPIKey, deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: analysisRateGroup,
			Rules: map[string]middleware.RateLimitRule{
				"ANALYSIS": {Rate: 1, Burst: 5},
			},
		}),
	)
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(admin)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterAdminRoutes(admin)
	}

	return r
}

// analysisRateGroup throttles only the report endpoint; block/unblock stay
// on the unlimited default group.
func analysisRateGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/admin/suggestions/analysis" {
		return "ANALYSIS"
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
