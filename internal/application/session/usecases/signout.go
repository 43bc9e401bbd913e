package usecases

import (
	"context"

	"fieldesk/internal/application/session"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

// SessionRevoker records signed-out session ids until every token carrying
// them has expired.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// SignOutUseCase invalidates a real session's credential server-side. The
// call blocks until the revocation is durable; only then may the client
// discard its tokens. Simulated sessions have no server-side state, so for
// them sign-out is purely local.
type SignOutUseCase struct {
	revoker SessionRevoker
	logger  logger.Interface
}

func NewSignOutUseCase(revoker SessionRevoker, log logger.Interface) *SignOutUseCase {
	return &SignOutUseCase{revoker: revoker, logger: log}
}

func (uc *SignOutUseCase) Execute(ctx context.Context, s session.Session) error {
	if s.Simulated() {
		uc.logger.Infow("simulated session discarded", "session_id", s.SessionID)
		return nil
	}

	if err := uc.revoker.Revoke(ctx, s.SessionID); err != nil {
		uc.logger.Errorw("failed to revoke session",
			"error", err, "session_id", s.SessionID)
		return errors.NewInternalError("failed to sign out")
	}

	uc.logger.Infow("session signed out",
		"session_id", s.SessionID,
		"profile_id", s.ProfileID)
	return nil
}
