package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
)

type ClientRouteConfig struct {
	ClientHandler        *handlers.ClientHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupClientRoutes(api *gin.RouterGroup, config *ClientRouteConfig) {
	clients := api.Group("/clients")
	clients.Use(config.AuthMiddleware.RequireSession())
	{
		clients.POST("",
			config.PermissionMiddleware.RequireMutation(authorization.ActionClientCreate),
			config.ClientHandler.CreateClient)
		clients.PUT("/:id",
			config.PermissionMiddleware.RequireMutation(authorization.ActionClientUpdate),
			config.ClientHandler.UpdateClient)
		clients.GET("",
			config.ClientHandler.ListClients)
	}
}
