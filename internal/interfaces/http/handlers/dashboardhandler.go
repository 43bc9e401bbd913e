package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardusecases "fieldesk/internal/application/dashboard/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type DashboardHandler struct {
	getSummaryUC dashboardusecases.GetSummaryExecutor
	logger       logger.Interface
}

func NewDashboardHandler(getSummaryUC dashboardusecases.GetSummaryExecutor, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getSummaryUC: getSummaryUC,
		logger:       log,
	}
}

// GetSummary handles GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	result, err := h.getSummaryUC.Execute(c.Request.Context(), dashboardusecases.GetSummaryCommand{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Summary)
}

// GetNavigation handles GET /api/dashboard/navigation. The returned items
// drive which sections the frontend renders for the caller's role.
func (h *DashboardHandler) GetNavigation(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", authorization.NavigationItems(s.Role))
}
