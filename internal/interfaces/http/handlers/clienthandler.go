package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientusecases "fieldesk/internal/application/client/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC clientusecases.CreateClientExecutor
	updateClientUC clientusecases.UpdateClientExecutor
	listClientsUC  clientusecases.ListClientsExecutor
	logger         logger.Interface
}

func NewClientHandler(
	createClientUC clientusecases.CreateClientExecutor,
	updateClientUC clientusecases.UpdateClientExecutor,
	listClientsUC clientusecases.ListClientsExecutor,
	log logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createClientUC: createClientUC,
		updateClientUC: updateClientUC,
		listClientsUC:  listClientsUC,
		logger:         log,
	}
}

type clientRequest struct {
	Name          string `json:"name" binding:"required"`
	Document      string `json:"document"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// CreateClient handles POST /api/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), clientusecases.CreateClientCommand{
		Session:       s,
		Name:          req.Name,
		Document:      req.Document,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "client created")
}

// UpdateClient handles PUT /api/clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	clientID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	err = h.updateClientUC.Execute(c.Request.Context(), clientusecases.UpdateClientCommand{
		Session:       s,
		ClientID:      clientID,
		Name:          req.Name,
		Document:      req.Document,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client updated", nil)
}

// ListClients handles GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	items, err := h.listClientsUC.Execute(c.Request.Context(), clientusecases.ListClientsQuery{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
