package usecases

import (
	"context"

	"github.com/google/uuid"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/infrastructure/auth"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

// TokenService is the slice of the JWT service the auth usecases need.
type TokenService interface {
	Generate(profileID uint, sessionID string, role authorization.Role, clientID *uint) (*auth.TokenPair, error)
	GenerateSimulated(sessionID string, role authorization.Role, clientID *uint, fullName string) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type SignInCommand struct {
	Email    string
	Password string
}

type SignInResult struct {
	Profile      *identity.Profile
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type SignInUseCase struct {
	profiles    identity.Repository
	credentials identity.CredentialStore
	hasher      PasswordHasher
	jwtService  TokenService
	logger      logger.Interface
}

func NewSignInUseCase(
	profiles identity.Repository,
	credentials identity.CredentialStore,
	hasher PasswordHasher,
	jwtService TokenService,
	log logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		profiles:    profiles,
		credentials: credentials,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      log,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*SignInResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	profile, err := uc.profiles.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Same generic error as a wrong password so the endpoint never
		// confirms whether an email is registered.
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	hash, err := uc.credentials.GetCredential(ctx, profile.ID())
	if err != nil {
		uc.logger.Warnw("profile has no credential", "profile_id", profile.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, hash); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	sessionID := uuid.NewString()
	tokens, err := uc.jwtService.Generate(profile.ID(), sessionID, profile.Role(), profile.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "profile_id", profile.ID())
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("profile signed in",
		"profile_id", profile.ID(),
		"role", profile.Role().String(),
		"session_id", sessionID)

	return &SignInResult{
		Profile:      profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
