package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireSession())
	{
		users.GET("",
			config.PermissionMiddleware.RequireRole(authorization.RoleAdmin),
			config.UserHandler.ListUsers)
		users.PATCH("/:id/role",
			config.PermissionMiddleware.RequireMutation(authorization.ActionUserUpdateRole),
			config.UserHandler.UpdateUserRole)
	}
}
