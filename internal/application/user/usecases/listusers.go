package usecases

import (
	"context"
	"fmt"
	"time"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	ClientID  *uint  `json:"client_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ListUsersCommand struct {
	Session session.Session
}

type ListUsersResult struct {
	Users []UserDTO
}

type ListUsersUseCase struct {
	profileRepo identity.Repository
	logger      logger.Interface
}

func NewListUsersUseCase(profileRepo identity.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{profileRepo: profileRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	if cmd.Session.Role != authorization.RoleAdmin {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]UserDTO, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, toUserDTO(p))
	}

	return &ListUsersResult{Users: users}, nil
}

func toUserDTO(p *identity.Profile) UserDTO {
	return UserDTO{
		ID:        p.ID(),
		Email:     p.Email(),
		FullName:  p.FullName(),
		Role:      p.Role().String(),
		ClientID:  p.ClientID(),
		CreatedAt: p.CreatedAt().Format(time.RFC3339),
	}
}
