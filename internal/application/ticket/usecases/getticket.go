package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/application/ticket/dto"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/ticket"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	Session session.Session
	// Number is the sequential display number, not the row ID.
	Number uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	updateRepo ticket.UpdateRepository
	clientRepo client.Repository
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	updateRepo ticket.UpdateRepository,
	clientRepo client.Repository,
	md markdown.MarkdownService,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		updateRepo: updateRepo,
		clientRepo: clientRepo,
		markdown:   md,
		logger:     log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByNumber(ctx, query.Number)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err := requireVisible(query.Session, t); err != nil {
		return nil, err
	}

	result := dto.ToTicketDTO(t)

	if c, err := uc.clientRepo.GetByID(ctx, t.ClientID()); err == nil {
		result.ClientName = c.Name()
	}

	updates, err := uc.updateRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket updates", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to load ticket updates: %w", err)
	}

	result.Updates = make([]dto.UpdateDTO, len(updates))
	for i, u := range updates {
		html, err := uc.markdown.ToHTMLSanitized(u.Content())
		if err != nil {
			uc.logger.Warnw("failed to render update content", "error", err, "update_id", u.ID())
			html = ""
		}
		result.Updates[i] = dto.ToUpdateDTO(u, html)
	}

	return result, nil
}
