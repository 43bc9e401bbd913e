package usecases

import (
	"context"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/infrastructure/auth"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
)

type mockProfileRepository struct {
	SaveFunc       func(ctx context.Context, p *identity.Profile) error
	UpdateFunc     func(ctx context.Context, p *identity.Profile) error
	GetByIDFunc    func(ctx context.Context, id uint) (*identity.Profile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*identity.Profile, error)
	ListFunc       func(ctx context.Context) ([]*identity.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *identity.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*identity.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*identity.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) List(ctx context.Context) ([]*identity.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockCredentialStore struct {
	SaveCredentialFunc func(ctx context.Context, profileID uint, passwordHash string) error
	GetCredentialFunc  func(ctx context.Context, profileID uint) (string, error)
}

func (m *mockCredentialStore) SaveCredential(ctx context.Context, profileID uint, passwordHash string) error {
	if m.SaveCredentialFunc != nil {
		return m.SaveCredentialFunc(ctx, profileID, passwordHash)
	}
	return nil
}

func (m *mockCredentialStore) GetCredential(ctx context.Context, profileID uint) (string, error) {
	if m.GetCredentialFunc != nil {
		return m.GetCredentialFunc(ctx, profileID)
	}
	return "", nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc          func(profileID uint, sessionID string, role authorization.Role, clientID *uint) (*auth.TokenPair, error)
	GenerateSimulatedFunc func(sessionID string, role authorization.Role, clientID *uint, fullName string) (*auth.TokenPair, error)
	RefreshFunc           func(refreshToken string) (*auth.TokenPair, error)
	VerifyTokenFunc       func(tokenString string) (*auth.Claims, error)
}

func (m *mockTokenService) Generate(profileID uint, sessionID string, role authorization.Role, clientID *uint) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(profileID, sessionID, role, clientID)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) GenerateSimulated(sessionID string, role authorization.Role, clientID *uint, fullName string) (*auth.TokenPair, error) {
	if m.GenerateSimulatedFunc != nil {
		return m.GenerateSimulatedFunc(sessionID, role, clientID, fullName)
	}
	return &auth.TokenPair{AccessToken: "demo-access", ExpiresIn: 600}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*auth.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &auth.TokenPair{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Verify(tokenString string) (*auth.Claims, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(tokenString)
	}
	return &auth.Claims{SessionID: "sess-1", TokenType: auth.TokenTypeRefresh}, nil
}

type mockSessionRevoker struct {
	RevokeFunc    func(ctx context.Context, sessionID string) error
	IsRevokedFunc func(ctx context.Context, sessionID string) (bool, error)
}

func (m *mockSessionRevoker) Revoke(ctx context.Context, sessionID string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, sessionID)
	}
	return false, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
