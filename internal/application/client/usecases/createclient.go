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

type CreateClientCommand struct {
	Session       session.Session
	Name          string
	Document      string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

type CreateClientResult struct {
	ClientID uint
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, log logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     log,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error) {
	if cmd.Session.Simulated() {
		return nil, errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(cmd.Session.Role, authorization.ActionClientCreate) {
		return nil, errors.NewForbiddenError("only admins can create clients")
	}

	c, err := client.NewClient(cmd.Name, cmd.Document, cmd.ContactPerson, cmd.Phone, cmd.Email, cmd.Address)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	uc.logger.Infow("client created", "client_id", c.ID(), "name", c.Name())

	return &CreateClientResult{ClientID: c.ID()}, nil
}
