package usecases

import (
	"context"

	"fieldesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type RecordUpdateExecutor interface {
	Execute(ctx context.Context, cmd RecordUpdateCommand) (*RecordUpdateResult, error)
}

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error)
}

type AttachImageExecutor interface {
	Execute(ctx context.Context, cmd AttachImageCommand) (*AttachImageResult, error)
}
