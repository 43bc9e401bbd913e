package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/application/ticket/dto"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/logger"
)

// recentTicketCount is how many of the newest tickets the dashboard shows
// next to the headline counts.
const recentTicketCount = 5

// SummaryDTO is the dashboard headline block. Counts and the recent feed are
// computed under the caller's row scope, so a client-scoped session only
// ever sees its own client's tickets reflected here.
type SummaryDTO struct {
	Total      int64                   `json:"total"`
	Open       int64                   `json:"open"`
	InProgress int64                   `json:"in_progress"`
	Waiting    int64                   `json:"waiting"`
	Completed  int64                   `json:"completed"`
	Cancelled  int64                   `json:"cancelled"`
	Active     int64                   `json:"active"`
	Recent     []dto.TicketListItemDTO `json:"recent"`
}

type GetSummaryCommand struct {
	Session session.Session
}

type GetSummaryResult struct {
	Summary SummaryDTO
}

type GetSummaryUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetSummaryUseCase(ticketRepo ticket.Repository, log logger.Interface) *GetSummaryUseCase {
	return &GetSummaryUseCase{ticketRepo: ticketRepo, logger: log}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, cmd GetSummaryCommand) (*GetSummaryResult, error) {
	scope := cmd.Session.Scope()

	counts, err := uc.ticketRepo.CountByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	recent, _, err := uc.ticketRepo.List(ctx, ticket.Filter{
		Scope:     scope,
		Page:      1,
		PageSize:  recentTicketCount,
		SortBy:    "opened_at",
		SortOrder: "desc",
	})
	if err != nil {
		uc.logger.Errorw("failed to list recent tickets", "error", err)
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	summary := SummaryDTO{
		Open:       counts[vo.StatusOpen],
		InProgress: counts[vo.StatusInProgress],
		Waiting:    counts[vo.StatusWaiting],
		Completed:  counts[vo.StatusCompleted],
		Cancelled:  counts[vo.StatusCancelled],
		Recent:     make([]dto.TicketListItemDTO, len(recent)),
	}
	for i, t := range recent {
		summary.Recent[i] = dto.ToTicketListItemDTO(t)
	}
	summary.Active = summary.Open + summary.InProgress + summary.Waiting
	summary.Total = summary.Active + summary.Completed + summary.Cancelled

	return &GetSummaryResult{Summary: summary}, nil
}
