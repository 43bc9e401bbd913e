package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.SignIn)
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/demo", config.AuthHandler.EnterDemo)
		auth.POST("/refresh", config.AuthHandler.Refresh)

		auth.POST("/logout",
			config.AuthMiddleware.RequireSession(),
			config.AuthHandler.SignOut)
		auth.GET("/session",
			config.AuthMiddleware.RequireSession(),
			config.AuthHandler.CurrentSession)
	}
}
