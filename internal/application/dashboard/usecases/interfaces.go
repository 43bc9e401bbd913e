package usecases

import "context"

type GetSummaryExecutor interface {
	Execute(ctx context.Context, cmd GetSummaryCommand) (*GetSummaryResult, error)
}
