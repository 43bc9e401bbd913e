package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	equipmentusecases "fieldesk/internal/application/equipment/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type EquipmentHandler struct {
	createEquipmentUC equipmentusecases.CreateEquipmentExecutor
	listEquipmentUC   equipmentusecases.ListEquipmentExecutor
	logger            logger.Interface
}

func NewEquipmentHandler(
	createEquipmentUC equipmentusecases.CreateEquipmentExecutor,
	listEquipmentUC equipmentusecases.ListEquipmentExecutor,
	log logger.Interface,
) *EquipmentHandler {
	return &EquipmentHandler{
		createEquipmentUC: createEquipmentUC,
		listEquipmentUC:   listEquipmentUC,
		logger:            log,
	}
}

type createEquipmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Location     string `json:"location"`
	ClientID     uint   `json:"client_id" binding:"required"`
	ContractID   *uint  `json:"contract_id"`
}

// CreateEquipment handles POST /api/equipment
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, type and client_id are required")
		return
	}

	result, err := h.createEquipmentUC.Execute(c.Request.Context(), equipmentusecases.CreateEquipmentCommand{
		Session:      s,
		Name:         req.Name,
		Type:         req.Type,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		ClientID:     req.ClientID,
		ContractID:   req.ContractID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "equipment registered")
}

// ListEquipment handles GET /api/equipment
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	result, err := h.listEquipmentUC.Execute(c.Request.Context(), equipmentusecases.ListEquipmentCommand{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Equipment)
}
