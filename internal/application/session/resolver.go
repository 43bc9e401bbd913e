package session

import (
	"context"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/infrastructure/auth"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

// TokenVerifier is the slice of the JWT service the resolver needs.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// RevocationChecker reports whether a session id has been signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Resolver turns a bearer token into a Session. Real sessions are re-read
// from the profile store on every request so a role change takes effect
// immediately, and their session id is checked against the revocation list
// so a signed-out token stops working before it expires. Simulated sessions
// live entirely inside their token.
type Resolver struct {
	verifier    TokenVerifier
	profiles    identity.Repository
	revocations RevocationChecker
	logger      logger.Interface
}

func NewResolver(verifier TokenVerifier, profiles identity.Repository, revocations RevocationChecker, log logger.Interface) *Resolver {
	return &Resolver{
		verifier:    verifier,
		profiles:    profiles,
		revocations: revocations,
		logger:      log,
	}
}

func (r *Resolver) Resolve(ctx context.Context, tokenString string) (*Session, error) {
	claims, err := r.verifier.Verify(tokenString)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	if claims.TokenType != auth.TokenTypeAccess {
		return nil, errors.NewUnauthorizedError("token is not an access token")
	}

	if claims.Simulated {
		s := NewSimulatedSession(claims.SessionID, claims.Role, claims.ClientID)
		return &s, nil
	}

	revoked, err := r.revocations.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		r.logger.Errorw("failed to check session revocation",
			"session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to verify session")
	}
	if revoked {
		return nil, errors.NewUnauthorizedError("session has been signed out")
	}

	profile, err := r.profiles.GetByID(ctx, claims.ProfileID)
	if err != nil {
		r.logger.Warnw("session token references unknown profile",
			"profile_id", claims.ProfileID, "error", err)
		return nil, errors.NewUnauthorizedError("session profile no longer exists")
	}

	s := NewRealSession(claims.SessionID, profile)
	return &s, nil
}
