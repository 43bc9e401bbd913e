package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "fieldesk/internal/application/user/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC      userusecases.ListUsersExecutor
	updateUserRoleUC userusecases.UpdateUserRoleExecutor
	logger           logger.Interface
}

func NewUserHandler(
	listUsersUC userusecases.ListUsersExecutor,
	updateUserRoleUC userusecases.UpdateUserRoleExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:      listUsersUC,
		updateUserRoleUC: updateUserRoleUC,
		logger:           log,
	}
}

type updateUserRoleRequest struct {
	Role     string `json:"role" binding:"required"`
	ClientID *uint  `json:"client_id"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), userusecases.ListUsersCommand{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}

// UpdateUserRole handles PATCH /api/users/:id/role
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	profileID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req updateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "role is required")
		return
	}

	result, err := h.updateUserRoleUC.Execute(c.Request.Context(), userusecases.UpdateUserRoleCommand{
		Session:   s,
		ProfileID: profileID,
		Role:      req.Role,
		ClientID:  req.ClientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user role updated", result.User)
}
