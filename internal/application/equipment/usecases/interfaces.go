package usecases

import "context"

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, cmd ListEquipmentCommand) (*ListEquipmentResult, error)
}
