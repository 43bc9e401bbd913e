package usecases

import (
	"context"
	"fmt"
	"time"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/shared/logger"
)

type ClientDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Document      string    `json:"document"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

func toClientDTO(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:            c.ID(),
		Name:          c.Name(),
		Document:      c.Document(),
		ContactPerson: c.ContactPerson(),
		Phone:         c.Phone(),
		Email:         c.Email(),
		Address:       c.Address(),
		CreatedAt:     c.CreatedAt(),
	}
}

type ListClientsQuery struct {
	Session session.Session
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, log logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     log,
	}
}

// Execute lists clients. Client-scoped callers only ever see their own
// client, returned as a single-element list so pickers still work.
func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) ([]ClientDTO, error) {
	scope := query.Session.Scope()

	if scope.IsEmpty() {
		return []ClientDTO{}, nil
	}

	if !scope.Unrestricted() {
		c, err := uc.clientRepo.GetByID(ctx, *scope.ClientID)
		if err != nil {
			// An affiliated client that no longer exists yields an empty
			// list, not an error.
			return []ClientDTO{}, nil
		}
		return []ClientDTO{toClientDTO(c)}, nil
	}

	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	items := make([]ClientDTO, len(clients))
	for i, c := range clients {
		items[i] = toClientDTO(c)
	}
	return items, nil
}
