package suggestions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the suggestions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.createSuggestion)
	rg.GET("/suggestions", h.listSuggestions)
}

type createSuggestionRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Category    string `json:"category"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) createSuggestion(c *gin.Context) {
	var req createSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "userId and title are required", nil)
		return
	}

	suggestion, err := h.Svc.Create(c.Request.Context(), req.UserID, req.Category, req.Title, req.Description)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create suggestion", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, suggestion)
}

func (h *Handler) listSuggestions(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		status = StatusPending
	}

	items, err := h.Svc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list suggestions", nil)
		return
	}

	respond.OK(c, items)
}
