package usecases

import (
	"context"

	"github.com/google/uuid"

	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/config"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type EnterDemoCommand struct {
	Role string
	// ClientID anchors client-scoped demo roles to an existing client so
	// their listings are not empty.
	ClientID *uint
}

type EnterDemoResult struct {
	AccessToken string
	ExpiresIn   int64
	FullName    string
	Email       string
	Role        authorization.Role
}

// EnterDemoUseCase issues a simulated session for any role without touching
// the profile store. The resulting token is read-only by construction: the
// simulated claim blocks every mutation at the middleware.
type EnterDemoUseCase struct {
	jwtService TokenService
	demoConfig config.DemoConfig
	logger     logger.Interface
}

func NewEnterDemoUseCase(jwtService TokenService, demoConfig config.DemoConfig, log logger.Interface) *EnterDemoUseCase {
	return &EnterDemoUseCase{
		jwtService: jwtService,
		demoConfig: demoConfig,
		logger:     log,
	}
}

func (uc *EnterDemoUseCase) Execute(ctx context.Context, cmd EnterDemoCommand) (*EnterDemoResult, error) {
	if !uc.demoConfig.Enabled {
		return nil, errors.NewForbiddenError("demonstration mode is disabled")
	}

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var clientID *uint
	if role.IsClientScoped() {
		clientID = cmd.ClientID
	}

	sessionID := uuid.NewString()
	fullName := "Demo User (" + role.String() + ")"

	tokens, err := uc.jwtService.GenerateSimulated(sessionID, role, clientID, fullName)
	if err != nil {
		uc.logger.Errorw("failed to issue demo token", "error", err, "role", role.String())
		return nil, errors.NewInternalError("failed to create demo session")
	}

	uc.logger.Infow("demo session issued",
		"role", role.String(),
		"session_id", sessionID)

	return &EnterDemoResult{
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
		FullName:    fullName,
		Email:       role.String() + "@demo.fieldesk.local",
		Role:        role,
	}, nil
}
