package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type UpdateClientCommand struct {
	Session       session.Session
	ClientID      uint
	Name          string
	Document      string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, log logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     log,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) error {
	if cmd.Session.Simulated() {
		return errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(cmd.Session.Role, authorization.ActionClientUpdate) {
		return errors.NewForbiddenError("only admins can update clients")
	}

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return errors.NewNotFoundError("client not found")
	}

	if err := c.UpdateDetails(cmd.Name, cmd.Document, cmd.ContactPerson, cmd.Phone, cmd.Email, cmd.Address); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "error", err, "client_id", cmd.ClientID)
		return fmt.Errorf("failed to update client: %w", err)
	}

	uc.logger.Infow("client updated", "client_id", c.ID())
	return nil
}
