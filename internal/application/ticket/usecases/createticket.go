package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Session     session.Session
	Title       string
	Description string
	Category    string
	Priority    string
	ClientID    uint
	ContractID  *uint
	EquipmentID *uint
	Location    string
}

type CreateTicketResult struct {
	TicketID uint
	Number   uint
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.Repository
	clientRepo    client.Repository
	contractRepo  contract.Repository
	equipmentRepo equipment.Repository
	txMgr         db.TxManager
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	contractRepo contract.Repository,
	equipmentRepo equipment.Repository,
	txMgr db.TxManager,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		clientRepo:    clientRepo,
		contractRepo:  contractRepo,
		equipmentRepo: equipmentRepo,
		txMgr:         txMgr,
		logger:        log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := requireMutation(cmd.Session, authorization.ActionTicketCreate); err != nil {
		return nil, err
	}

	clientID := cmd.ClientID
	// Client-scoped callers always open tickets against their own client,
	// whatever the request says.
	if scope := cmd.Session.Scope(); !scope.Unrestricted() {
		if scope.IsEmpty() {
			return nil, errors.NewForbiddenError("profile is not affiliated with a client")
		}
		clientID = *scope.ClientID
	}

	exists, err := uc.clientRepo.Exists(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to check client", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, errors.NewValidationError("client does not exist")
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, category, priority, clientID, cmd.Session.ProfileID, cmd.Location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ContractID != nil {
		c, err := uc.contractRepo.GetByID(ctx, *cmd.ContractID)
		if err != nil {
			return nil, errors.NewValidationError("contract does not exist")
		}
		if !c.BelongsTo(clientID) {
			return nil, errors.NewValidationError("contract belongs to a different client")
		}
		if err := t.SetContract(c.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.EquipmentID != nil {
		e, err := uc.equipmentRepo.GetByID(ctx, *cmd.EquipmentID)
		if err != nil {
			return nil, errors.NewValidationError("equipment does not exist")
		}
		if !e.BelongsTo(clientID) {
			return nil, errors.NewValidationError("equipment belongs to a different client")
		}
		if err := t.SetEquipment(e.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// Save runs in a transaction so the sequential number allocation and the
	// insert commit together.
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Save(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"number", t.Number(),
		"client_id", clientID,
		"creator_id", cmd.Session.ProfileID)

	return &CreateTicketResult{
		TicketID: t.ID(),
		Number:   t.Number(),
	}, nil
}
