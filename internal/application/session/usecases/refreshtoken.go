package usecases

import (
	"context"

	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase exchanges a refresh token for a new pair. A refresh
// token whose session has been signed out is refused, so sign-out ends the
// session even before the 7-day refresh window closes.
type RefreshTokenUseCase struct {
	jwtService TokenService
	revoker    SessionRevoker
	logger     logger.Interface
}

func NewRefreshTokenUseCase(jwtService TokenService, revoker SessionRevoker, log logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService: jwtService,
		revoker:    revoker,
		logger:     log,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.jwtService.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	revoked, err := uc.revoker.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to check session revocation",
			"session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to verify session")
	}
	if revoked {
		return nil, errors.NewUnauthorizedError("session has been signed out")
	}

	tokens, err := uc.jwtService.Refresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
