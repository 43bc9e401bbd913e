package usecases

import "context"

type ListUsersExecutor interface {
	Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error)
}

type UpdateUserRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserRoleCommand) (*UpdateUserRoleResult, error)
}
