package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
)

func TestRegisterUseCase_Success(t *testing.T) {
	var savedProfile *identity.Profile
	var savedHash string
	var hashProfileID uint

	profiles := &mockProfileRepository{
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			require.NoError(t, p.SetID(9))
			savedProfile = p
			return nil
		},
	}
	credentials := &mockCredentialStore{
		SaveCredentialFunc: func(ctx context.Context, profileID uint, passwordHash string) error {
			hashProfileID = profileID
			savedHash = passwordHash
			return nil
		},
	}

	uc := NewRegisterUseCase(profiles, credentials, &mockHasher{}, &mockTokenService{}, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "New@Example.com",
		Password: "longenough",
		FullName: "New Person",
	})

	require.NoError(t, err)
	require.NotNil(t, savedProfile)
	assert.Equal(t, "new@example.com", savedProfile.Email())
	assert.Equal(t, authorization.RoleClientUser, savedProfile.Role())
	assert.Nil(t, savedProfile.ClientID())
	assert.Equal(t, uint(9), hashProfileID)
	assert.Equal(t, "hashed:longenough", savedHash)
	assert.Equal(t, "access", result.AccessToken)
}

func TestRegisterUseCase_ShortPasswordRejected(t *testing.T) {
	uc := NewRegisterUseCase(&mockProfileRepository{}, &mockCredentialStore{}, &mockHasher{}, &mockTokenService{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "new@example.com",
		Password: "short",
		FullName: "New Person",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterUseCase_DuplicateEmailConflict(t *testing.T) {
	profiles := &mockProfileRepository{
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			return errors.NewConflictError("email already registered")
		},
	}

	uc := NewRegisterUseCase(profiles, &mockCredentialStore{}, &mockHasher{}, &mockTokenService{}, &mockTxManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "taken@example.com",
		Password: "longenough",
		FullName: "New Person",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterUseCase_ProfileAndCredentialShareTransaction(t *testing.T) {
	var txActive bool
	var profileInTx, credentialInTx bool

	txManager := &mockTxManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txActive = true
			defer func() { txActive = false }()
			return fn(ctx)
		},
	}
	profiles := &mockProfileRepository{
		SaveFunc: func(ctx context.Context, p *identity.Profile) error {
			profileInTx = txActive
			require.NoError(t, p.SetID(9))
			return nil
		},
	}
	credentials := &mockCredentialStore{
		SaveCredentialFunc: func(ctx context.Context, profileID uint, passwordHash string) error {
			credentialInTx = txActive
			return nil
		},
	}

	uc := NewRegisterUseCase(profiles, credentials, &mockHasher{}, &mockTokenService{}, txManager, &mockLogger{})
	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "new@example.com",
		Password: "longenough",
		FullName: "New Person",
	})

	require.NoError(t, err)
	assert.True(t, profileInTx)
	assert.True(t, credentialInTx)
}
