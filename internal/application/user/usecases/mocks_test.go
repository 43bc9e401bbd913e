package usecases

import (
	"context"

	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/identity"
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

type mockClientRepository struct {
	SaveFunc    func(ctx context.Context, c *client.Client) error
	UpdateFunc  func(ctx context.Context, c *client.Client) error
	GetByIDFunc func(ctx context.Context, id uint) (*client.Client, error)
	ListFunc    func(ctx context.Context) ([]*client.Client, error)
	ExistsFunc  func(ctx context.Context, id uint) (bool, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
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
