package routes

import (
	"github.com/gin-gonic/gin"

	"fieldesk/internal/interfaces/http/handlers"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireSession())
	{
		tickets.POST("",
			config.PermissionMiddleware.RequireMutation(authorization.ActionTicketCreate),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Action endpoints before the parameterized GET to avoid route
		// conflicts.
		tickets.POST("/:number/updates",
			config.PermissionMiddleware.RequireMutation(authorization.ActionTicketComment),
			config.TicketHandler.RecordUpdate)
		tickets.POST("/:number/assign",
			config.PermissionMiddleware.RequireMutation(authorization.ActionTicketAssign),
			config.TicketHandler.AssignTechnician)
		tickets.POST("/:number/image",
			config.PermissionMiddleware.RequireMutation(authorization.ActionTicketComment),
			config.TicketHandler.AttachImage)

		tickets.GET("/:number",
			config.TicketHandler.GetTicket)
	}
}
