package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
)

type EquipmentRouteConfig struct {
	EquipmentHandler     *handlers.EquipmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEquipmentRoutes(api *gin.RouterGroup, config *EquipmentRouteConfig) {
	equipment := api.Group("/equipment")
	equipment.Use(config.AuthMiddleware.RequireSession())
	{
		equipment.POST("",
			config.PermissionMiddleware.RequireMutation(authorization.ActionEquipmentCreate),
			config.EquipmentHandler.CreateEquipment)
		equipment.GET("",
			config.EquipmentHandler.ListEquipment)
	}
}
