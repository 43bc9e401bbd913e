package usecases

import (
	"context"
	"fmt"
	"time"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type CreateContractCommand struct {
	Session   session.Session
	Name      string
	Number    string
	ClientID  uint
	StartDate time.Time
	EndDate   *time.Time
}

type CreateContractResult struct {
	ContractID uint
}

type CreateContractUseCase struct {
	contractRepo contract.Repository
	clientRepo   client.Repository
	logger       logger.Interface
}

func NewCreateContractUseCase(
	contractRepo contract.Repository,
	clientRepo client.Repository,
	log logger.Interface,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		logger:       log,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (*CreateContractResult, error) {
	if cmd.Session.Simulated() {
		return nil, errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(cmd.Session.Role, authorization.ActionContractCreate) {
		return nil, errors.NewForbiddenError("only admins can create contracts")
	}

	exists, err := uc.clientRepo.Exists(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to check client", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, errors.NewValidationError("client does not exist")
	}

	c, err := contract.NewContract(cmd.Name, cmd.Number, cmd.ClientID, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contractRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save contract", "error", err)
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	uc.logger.Infow("contract created", "contract_id", c.ID(), "client_id", cmd.ClientID)

	return &CreateContractResult{ContractID: c.ID()}, nil
}
