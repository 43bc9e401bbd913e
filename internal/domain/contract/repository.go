package contract

import (
	"context"

	"fieldesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, contract *Contract) error
	Update(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, id uint) (*Contract, error)
	List(ctx context.Context, scope authorization.Scope) ([]*Contract, error)
}
