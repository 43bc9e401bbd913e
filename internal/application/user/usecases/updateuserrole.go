package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type UpdateUserRoleCommand struct {
	Session   session.Session
	ProfileID uint
	Role      string
	ClientID  *uint
}

type UpdateUserRoleResult struct {
	User UserDTO
}

type UpdateUserRoleUseCase struct {
	profileRepo identity.Repository
	clientRepo  client.Repository
	logger      logger.Interface
}

func NewUpdateUserRoleUseCase(
	profileRepo identity.Repository,
	clientRepo client.Repository,
	log logger.Interface,
) *UpdateUserRoleUseCase {
	return &UpdateUserRoleUseCase{
		profileRepo: profileRepo,
		clientRepo:  clientRepo,
		logger:      log,
	}
}

func (uc *UpdateUserRoleUseCase) Execute(ctx context.Context, cmd UpdateUserRoleCommand) (*UpdateUserRoleResult, error) {
	if cmd.Session.Simulated() {
		return nil, errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(cmd.Session.Role, authorization.ActionUserUpdateRole) {
		return nil, errors.NewForbiddenError("only admins can change user roles")
	}

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	profile, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if role.IsClientScoped() {
		if cmd.ClientID == nil {
			return nil, errors.NewValidationError("a client affiliation is required for this role")
		}
		exists, err := uc.clientRepo.Exists(ctx, *cmd.ClientID)
		if err != nil {
			uc.logger.Errorw("failed to check client", "error", err, "client_id", *cmd.ClientID)
			return nil, fmt.Errorf("failed to check client: %w", err)
		}
		if !exists {
			return nil, errors.NewValidationError("client does not exist")
		}
	}

	if err := profile.ChangeRole(role, cmd.ClientID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "profile_id", cmd.ProfileID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user role changed", "profile_id", profile.ID(), "role", role.String())

	return &UpdateUserRoleResult{User: toUserDTO(profile)}, nil
}
