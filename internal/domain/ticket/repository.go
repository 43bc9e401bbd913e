package ticket

import (
	"context"

	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, scope authorization.Scope) (map[vo.TicketStatus]int64, error)
}

// Filter narrows a ticket listing. Scope is the caller's row-scope and is
// applied in the query itself, never as a post-filter.
type Filter struct {
	Scope      authorization.Scope
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	Category   *vo.Category
	CreatorID  *uint
	Technician *uint
	// Search matches title, description and client name.
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type UpdateRepository interface {
	Save(ctx context.Context, update *Update) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Update, error)
}
