package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/shared/logger"
)

type ContractDTO struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Number    string  `json:"number"`
	ClientID  uint    `json:"client_id"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    string  `json:"status"`
}

type ListContractsCommand struct {
	Session session.Session
}

type ListContractsResult struct {
	Contracts []ContractDTO
}

type ListContractsUseCase struct {
	contractRepo contract.Repository
	logger       logger.Interface
}

func NewListContractsUseCase(contractRepo contract.Repository, log logger.Interface) *ListContractsUseCase {
	return &ListContractsUseCase{contractRepo: contractRepo, logger: log}
}

func (uc *ListContractsUseCase) Execute(ctx context.Context, cmd ListContractsCommand) (*ListContractsResult, error) {
	contracts, err := uc.contractRepo.List(ctx, cmd.Session.Scope())
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	dtos := make([]ContractDTO, 0, len(contracts))
	for _, c := range contracts {
		dtos = append(dtos, toContractDTO(c))
	}

	return &ListContractsResult{Contracts: dtos}, nil
}

func toContractDTO(c *contract.Contract) ContractDTO {
	dto := ContractDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Number:    c.Number(),
		ClientID:  c.ClientID(),
		StartDate: c.StartDate().Format("2006-01-02"),
		Status:    c.Status().String(),
	}
	if c.EndDate() != nil {
		end := c.EndDate().Format("2006-01-02")
		dto.EndDate = &end
	}
	return dto
}
