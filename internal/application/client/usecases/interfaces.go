package usecases

import "context"

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) error
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) ([]ClientDTO, error)
}
