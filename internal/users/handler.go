package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterAdminRoutes attaches user moderation routes to the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/users/:id/block", h.blockUser)
	rg.POST("/users/:id/unblock", h.unblockUser)
}

func (h *Handler) blockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *Handler) unblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *Handler) setBlocked(c *gin.Context, blocked bool) {
	userID := c.Param("id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return
	}

	if err := h.Svc.SetBlocked(c.Request.Context(), userID, blocked); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update user", nil)
		return
	}

	respond.OK(c, gin.H{"id": userID, "blocked": blocked})
}
