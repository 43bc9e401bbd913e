package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
)

type ContractRouteConfig struct {
	ContractHandler      *handlers.ContractHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupContractRoutes(api *gin.RouterGroup, config *ContractRouteConfig) {
	contracts := api.Group("/contracts")
	contracts.Use(config.AuthMiddleware.RequireSession())
	{
		contracts.POST("",
			config.PermissionMiddleware.RequireMutation(authorization.ActionContractCreate),
			config.ContractHandler.CreateContract)
		contracts.GET("",
			config.ContractHandler.ListContracts)
	}
}
