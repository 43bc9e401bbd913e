package usecases

import (
	"context"

	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
)

type mockEquipmentRepository struct {
	SaveFunc    func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc  func(ctx context.Context, e *equipment.Equipment) error
	GetByIDFunc func(ctx context.Context, id uint) (*equipment.Equipment, error)
	ListFunc    func(ctx context.Context, scope authorization.Scope) ([]*equipment.Equipment, error)
}

func (m *mockEquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context, scope authorization.Scope) ([]*equipment.Equipment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
	}
	return nil, nil
}

type mockContractRepository struct {
	SaveFunc    func(ctx context.Context, c *contract.Contract) error
	UpdateFunc  func(ctx context.Context, c *contract.Contract) error
	GetByIDFunc func(ctx context.Context, id uint) (*contract.Contract, error)
	ListFunc    func(ctx context.Context, scope authorization.Scope) ([]*contract.Contract, error)
}

func (m *mockContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockContractRepository) GetByID(ctx context.Context, id uint) (*contract.Contract, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContractRepository) List(ctx context.Context, scope authorization.Scope) ([]*contract.Contract, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
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
