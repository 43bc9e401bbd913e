package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/domain/ticket"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	Session      session.Session
	TicketID     uint
	TechnicianID uint
}

type AssignTechnicianResult struct {
	TicketID     uint
	TechnicianID uint
}

type AssignTechnicianUseCase struct {
	ticketRepo  ticket.Repository
	profileRepo identity.Repository
	logger      logger.Interface
}

func NewAssignTechnicianUseCase(
	ticketRepo ticket.Repository,
	profileRepo identity.Repository,
	log logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		ticketRepo:  ticketRepo,
		profileRepo: profileRepo,
		logger:      log,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error) {
	if err := requireMutation(cmd.Session, authorization.ActionTicketAssign); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err := requireVisible(cmd.Session, t); err != nil {
		return nil, err
	}

	technician, err := uc.profileRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewValidationError("technician profile does not exist")
	}
	if !technician.Role().IsTechnician() && !technician.Role().IsAdmin() {
		return nil, errors.NewValidationError("assignee must be a technician or admin")
	}

	if err := t.AssignTechnician(technician.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("technician assigned",
		"ticket_id", t.ID(),
		"technician_id", technician.ID())

	return &AssignTechnicianResult{
		TicketID:     t.ID(),
		TechnicianID: technician.ID(),
	}, nil
}
