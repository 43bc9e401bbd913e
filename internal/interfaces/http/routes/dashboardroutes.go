package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(api *gin.RouterGroup, config *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireSession())
	{
		dashboard.GET("/summary", config.DashboardHandler.GetSummary)
		dashboard.GET("/navigation", config.DashboardHandler.GetNavigation)
	}
}
