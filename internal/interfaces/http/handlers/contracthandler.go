package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contractusecases "fieldesk/internal/application/contract/usecases"
	"fieldesk/internal/interfaces/http/middleware"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type ContractHandler struct {
	createContractUC contractusecases.CreateContractExecutor
	listContractsUC  contractusecases.ListContractsExecutor
	logger           logger.Interface
}

func NewContractHandler(
	createContractUC contractusecases.CreateContractExecutor,
	listContractsUC contractusecases.ListContractsExecutor,
	log logger.Interface,
) *ContractHandler {
	return &ContractHandler{
		createContractUC: createContractUC,
		listContractsUC:  listContractsUC,
		logger:           log,
	}
}

type createContractRequest struct {
	Name      string `json:"name" binding:"required"`
	Number    string `json:"number" binding:"required"`
	ClientID  uint   `json:"client_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
}

// CreateContract handles POST /api/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, number, client_id and start_date are required")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		endDate = &parsed
	}

	result, err := h.createContractUC.Execute(c.Request.Context(), contractusecases.CreateContractCommand{
		Session:   s,
		Name:      req.Name,
		Number:    req.Number,
		ClientID:  req.ClientID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "contract created")
}

// ListContracts handles GET /api/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
		return
	}

	result, err := h.listContractsUC.Execute(c.Request.Context(), contractusecases.ListContractsCommand{Session: s})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Contracts)
}
