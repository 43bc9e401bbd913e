package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/infrastructure/auth"
	"fieldesk/internal/shared/errors"
)

func TestRefreshToken_Success(t *testing.T) {
	tokens := &mockTokenService{
		RefreshFunc: func(refreshToken string) (*auth.TokenPair, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return &auth.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil
		},
	}
	uc := NewRefreshTokenUseCase(tokens, &mockSessionRevoker{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", result.AccessToken)
	assert.Equal(t, "new-refresh", result.RefreshToken)
}

func TestRefreshToken_EmptyTokenRejected(t *testing.T) {
	uc := NewRefreshTokenUseCase(&mockTokenService{}, &mockSessionRevoker{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestRefreshToken_SignedOutSessionRejected(t *testing.T) {
	tokens := &mockTokenService{
		VerifyTokenFunc: func(tokenString string) (*auth.Claims, error) {
			return &auth.Claims{SessionID: "sess-gone", TokenType: auth.TokenTypeRefresh}, nil
		},
		RefreshFunc: func(refreshToken string) (*auth.TokenPair, error) {
			t.Fatal("a signed-out session must not mint new tokens")
			return nil, nil
		},
	}
	revoker := &mockSessionRevoker{
		IsRevokedFunc: func(ctx context.Context, sessionID string) (bool, error) {
			assert.Equal(t, "sess-gone", sessionID)
			return true, nil
		},
	}
	uc := NewRefreshTokenUseCase(tokens, revoker, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
