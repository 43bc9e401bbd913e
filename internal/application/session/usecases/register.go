package usecases

import (
	"context"

	"github.com/google/uuid"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Password string
	FullName string
}

type RegisterResult struct {
	Profile      *identity.Profile
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterUseCase creates a profile with the client_user role and no client
// affiliation. Until an admin affiliates the profile, its row scope matches
// nothing and every listing comes back empty.
type RegisterUseCase struct {
	profiles    identity.Repository
	credentials identity.CredentialStore
	hasher      PasswordHasher
	jwtService  TokenService
	txManager   db.TxManager
	logger      logger.Interface
}

func NewRegisterUseCase(
	profiles identity.Repository,
	credentials identity.CredentialStore,
	hasher PasswordHasher,
	jwtService TokenService,
	txManager db.TxManager,
	log logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		profiles:    profiles,
		credentials: credentials,
		hasher:      hasher,
		jwtService:  jwtService,
		txManager:   txManager,
		logger:      log,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	profile, err := identity.NewProfile(cmd.Email, cmd.FullName, authorization.RoleClientUser, nil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.profiles.Save(txCtx, profile); err != nil {
			return err
		}
		return uc.credentials.SaveCredential(txCtx, profile.ID(), hash)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save profile", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	sessionID := uuid.NewString()
	tokens, err := uc.jwtService.Generate(profile.ID(), sessionID, profile.Role(), profile.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "profile_id", profile.ID())
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("profile registered",
		"profile_id", profile.ID(),
		"email", profile.Email())

	return &RegisterResult{
		Profile:      profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
