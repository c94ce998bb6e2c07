package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitelleadami/ChirinIvatan/internal/service"
)

// DashboardHandler serves the role-dependent landing projection.
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Overview handles GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.Overview(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
