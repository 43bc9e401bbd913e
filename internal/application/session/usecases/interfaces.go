package usecases

import (
	"context"

	"fieldesk/internal/application/session"
)

type SignInExecutor interface {
	Execute(ctx context.Context, cmd SignInCommand) (*SignInResult, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type EnterDemoExecutor interface {
	Execute(ctx context.Context, cmd EnterDemoCommand) (*EnterDemoResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type SignOutExecutor interface {
	Execute(ctx context.Context, s session.Session) error
}
