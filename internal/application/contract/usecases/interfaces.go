package usecases

import "context"

type CreateContractExecutor interface {
	Execute(ctx context.Context, cmd CreateContractCommand) (*CreateContractResult, error)
}

type ListContractsExecutor interface {
	Execute(ctx context.Context, cmd ListContractsCommand) (*ListContractsResult, error)
}
