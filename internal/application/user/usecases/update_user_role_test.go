package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
)

func adminSession() session.Session {
	return session.Session{
		Kind:      session.KindReal,
		SessionID: "sess-1",
		ProfileID: 10,
		Role:      authorization.RoleAdmin,
	}
}

func storedProfile(t *testing.T, role authorization.Role, clientID *uint) *identity.Profile {
	t.Helper()
	p, err := identity.ReconstructProfile(42, "jo@example.com", "Jo Field", role, clientID, time.Now())
	require.NoError(t, err)
	return p
}

func TestUpdateUserRoleUseCase_PromoteToTechnicianClearsAffiliation(t *testing.T) {
	clientID := uint(5)
	var updated *identity.Profile
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.Profile, error) {
			return storedProfile(t, authorization.RoleClientUser, &clientID), nil
		},
		UpdateFunc: func(ctx context.Context, p *identity.Profile) error {
			updated = p
			return nil
		},
	}

	uc := NewUpdateUserRoleUseCase(profileRepo, &mockClientRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateUserRoleCommand{
		Session:   adminSession(),
		ProfileID: 42,
		Role:      "technician",
		ClientID:  &clientID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, authorization.RoleTechnician, updated.Role())
	assert.Nil(t, updated.ClientID())
	assert.Equal(t, "technician", result.User.Role)
	assert.Nil(t, result.User.ClientID)
}

func TestUpdateUserRoleUseCase_AssignClientScopedRole(t *testing.T) {
	clientID := uint(7)
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.Profile, error) {
			return storedProfile(t, authorization.RoleTechnician, nil), nil
		},
	}

	uc := NewUpdateUserRoleUseCase(profileRepo, &mockClientRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateUserRoleCommand{
		Session:   adminSession(),
		ProfileID: 42,
		Role:      "auditor",
		ClientID:  &clientID,
	})

	require.NoError(t, err)
	assert.Equal(t, "auditor", result.User.Role)
	require.NotNil(t, result.User.ClientID)
	assert.Equal(t, clientID, *result.User.ClientID)
}

func TestUpdateUserRoleUseCase_ClientScopedRoleWithoutClientRejected(t *testing.T) {
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.Profile, error) {
			return storedProfile(t, authorization.RoleTechnician, nil), nil
		},
		UpdateFunc: func(ctx context.Context, p *identity.Profile) error {
			t.Fatal("an unaffiliated client-scoped role must never be stored")
			return nil
		},
	}

	uc := NewUpdateUserRoleUseCase(profileRepo, &mockClientRepository{}, &mockLogger{})
	for _, role := range []string{"client_user", "auditor"} {
		_, err := uc.Execute(context.Background(), UpdateUserRoleCommand{
			Session:   adminSession(),
			ProfileID: 42,
			Role:      role,
			ClientID:  nil,
		})
		require.Error(t, err, "role %s", role)
		assert.True(t, errors.IsValidationError(err), "role %s", role)
	}
}

func TestUpdateUserRoleUseCase_UnknownClientRejected(t *testing.T) {
	clientID := uint(99)
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.Profile, error) {
			return storedProfile(t, authorization.RoleTechnician, nil), nil
		},
	}
	clientRepo := &mockClientRepository{
		ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return false, nil },
	}

	uc := NewUpdateUserRoleUseCase(profileRepo, clientRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateUserRoleCommand{
		Session:   adminSession(),
		ProfileID: 42,
		Role:      "client_user",
		ClientID:  &clientID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateUserRoleUseCase_NonAdminRejected(t *testing.T) {
	uc := NewUpdateUserRoleUseCase(&mockProfileRepository{}, &mockClientRepository{}, &mockLogger{})

	s := adminSession()
	s.Role = authorization.RoleTechnician
	_, err := uc.Execute(context.Background(), UpdateUserRoleCommand{
		Session:   s,
		ProfileID: 42,
		Role:      "admin",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListUsersUseCase_AdminOnly(t *testing.T) {
	profileRepo := &mockProfileRepository{
		ListFunc: func(ctx context.Context) ([]*identity.Profile, error) {
			return []*identity.Profile{storedProfile(t, authorization.RoleTechnician, nil)}, nil
		},
	}
	uc := NewListUsersUseCase(profileRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListUsersCommand{Session: adminSession()})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "jo@example.com", result.Users[0].Email)

	s := adminSession()
	s.Role = authorization.RoleAuditor
	_, err = uc.Execute(context.Background(), ListUsersCommand{Session: s})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
