package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldesk/internal/application/session"
	ticketusecases "fieldesk/internal/application/ticket/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC ticketusecases.CreateTicketExecutor
	getTicketUC    ticketusecases.GetTicketExecutor
	listTicketsUC  ticketusecases.ListTicketsExecutor
	recordUpdateUC ticketusecases.RecordUpdateExecutor
	assignUC       ticketusecases.AssignTechnicianExecutor
	attachImageUC  ticketusecases.AttachImageExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC ticketusecases.CreateTicketExecutor,
	getTicketUC ticketusecases.GetTicketExecutor,
	listTicketsUC ticketusecases.ListTicketsExecutor,
	recordUpdateUC ticketusecases.RecordUpdateExecutor,
	assignUC ticketusecases.AssignTechnicianExecutor,
	attachImageUC ticketusecases.AttachImageExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		recordUpdateUC: recordUpdateUC,
		assignUC:       assignUC,
		attachImageUC:  attachImageUC,
		logger:         log,
	}
}

type createTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	ClientID    uint   `json:"client_id"`
	ContractID  *uint  `json:"contract_id"`
	EquipmentID *uint  `json:"equipment_id"`
	Location    string `json:"location"`
}

type recordUpdateRequest struct {
	Content   string  `json:"content"`
	NewStatus *string `json:"new_status"`
}

type assignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		Session:     s,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		ClientID:    req.ClientID,
		ContractID:  req.ContractID,
		EquipmentID: req.EquipmentID,
		Location:    req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

// GetTicket handles GET /api/tickets/:number
func (h *TicketHandler) GetTicket(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	number, err := parseUintParam(c, "number")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket number")
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		Session: s,
		Number:  number,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		Session:   s,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Mine:      c.Query("mine") == "true",
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// RecordUpdate handles POST /api/tickets/:number/updates
func (h *TicketHandler) RecordUpdate(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	ticketID, err := h.resolveTicketID(c, s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req recordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.recordUpdateUC.Execute(c.Request.Context(), ticketusecases.RecordUpdateCommand{
		Session:   s,
		TicketID:  ticketID,
		Content:   req.Content,
		NewStatus: req.NewStatus,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "update recorded")
}

// AssignTechnician handles POST /api/tickets/:number/assign
func (h *TicketHandler) AssignTechnician(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	ticketID, err := h.resolveTicketID(c, s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "technician_id is required")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), ticketusecases.AssignTechnicianCommand{
		Session:      s,
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "technician assigned", result)
}

// AttachImage handles POST /api/tickets/:number/image
func (h *TicketHandler) AttachImage(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	ticketID, err := h.resolveTicketID(c, s)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.attachImageUC.Execute(c.Request.Context(), ticketusecases.AttachImageCommand{
		Session:  s,
		TicketID: ticketID,
		Filename: fileHeader.Filename,
		Reader:   file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "image attached", result)
}

// resolveTicketID turns the display number in the URL into the internal
// ticket ID, applying the caller's scope via the get usecase.
func (h *TicketHandler) resolveTicketID(c *gin.Context, s session.Session) (uint, error) {
	number, err := parseUintParam(c, "number")
	if err != nil {
		return 0, errors.NewBadRequestError("invalid ticket number")
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		Session: s,
		Number:  number,
	})
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
