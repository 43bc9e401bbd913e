package equipment

import (
	"context"

	"fieldesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, equipment *Equipment) error
	Update(ctx context.Context, equipment *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	List(ctx context.Context, scope authorization.Scope) ([]*Equipment, error)
}
