package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/shared/authorization"
)

func TestNewProfile(t *testing.T) {
	p, err := NewProfile("Tech@Example.COM", "Jo Field", authorization.RoleTechnician, nil)
	require.NoError(t, err)
	assert.Equal(t, "tech@example.com", p.Email())
	assert.Equal(t, authorization.RoleTechnician, p.Role())
	assert.Nil(t, p.ClientID())
}

func TestNewProfile_AffiliationInvariant(t *testing.T) {
	clientID := uint(3)

	// Client-scoped roles may start unaffiliated; their scope matches nothing.
	p, err := NewProfile("a@b.com", "A", authorization.RoleClientUser, nil)
	require.NoError(t, err)
	assert.True(t, p.Scope().IsEmpty())

	// Non-scoped roles must not carry an affiliation.
	_, err = NewProfile("a@b.com", "A", authorization.RoleAdmin, &clientID)
	require.Error(t, err)
	_, err = NewProfile("a@b.com", "A", authorization.RoleTechnician, &clientID)
	require.Error(t, err)

	p, err = NewProfile("a@b.com", "A", authorization.RoleClientUser, &clientID)
	require.NoError(t, err)
	require.NotNil(t, p.ClientID())
	assert.Equal(t, clientID, *p.ClientID())
}

func TestProfile_ChangeRole(t *testing.T) {
	clientID := uint(3)
	p, err := NewProfile("a@b.com", "A", authorization.RoleClientUser, &clientID)
	require.NoError(t, err)

	// Moving to a non-scoped role clears the affiliation.
	require.NoError(t, p.ChangeRole(authorization.RoleTechnician, &clientID))
	assert.Nil(t, p.ClientID())

	// Moving back without an affiliation leaves an empty scope.
	require.NoError(t, p.ChangeRole(authorization.RoleAuditor, nil))
	assert.True(t, p.Scope().IsEmpty())

	require.NoError(t, p.ChangeRole(authorization.RoleAuditor, &clientID))
	require.NotNil(t, p.ClientID())
}

func TestProfile_Scope(t *testing.T) {
	clientID := uint(9)
	p, err := ReconstructProfile(1, "a@b.com", "A", authorization.RoleClientUser, &clientID, time.Now())
	require.NoError(t, err)

	scope := p.Scope()
	require.False(t, scope.Unrestricted())
	assert.Equal(t, clientID, *scope.ClientID)

	admin, err := ReconstructProfile(2, "x@b.com", "X", authorization.RoleAdmin, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, admin.Scope().Unrestricted())
}
