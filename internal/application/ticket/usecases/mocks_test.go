package usecases

import (
	"context"
	"fmt"
	"io"

	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/infrastructure/storage"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc       func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc   func(ctx context.Context, number uint) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc func(ctx context.Context, scope authorization.Scope) (map[vo.TicketStatus]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number uint) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, scope authorization.Scope) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, scope)
	}
	return nil, nil
}

type mockUpdateRepository struct {
	SaveFunc          func(ctx context.Context, u *ticket.Update) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Update, error)
}

func (m *mockUpdateRepository) Save(ctx context.Context, u *ticket.Update) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUpdateRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
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
	return nil, fmt.Errorf("client not found")
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

// mockTxManager runs the callback inline so tests can observe writes without
// a database.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockMarkdownService struct {
	ToHTMLFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return m.ToHTML(markdown)
}

type mockBlobStore struct {
	SaveFunc func(reader io.Reader, originalFilename string) (*storage.SaveResult, error)
}

func (m *mockBlobStore) Save(reader io.Reader, originalFilename string) (*storage.SaveResult, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(reader, originalFilename)
	}
	return &storage.SaveResult{StoragePath: "blob.png", PublicURL: "/uploads/blob.png"}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                       {}
func (m *mockLogger) Info(msg string, args ...any)                        {}
func (m *mockLogger) Warn(msg string, args ...any)                        {}
func (m *mockLogger) Error(msg string, args ...any)                       {}
func (m *mockLogger) With(args ...any) logger.Interface                   { return m }
func (m *mockLogger) Named(name string) logger.Interface                  { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})     {}
