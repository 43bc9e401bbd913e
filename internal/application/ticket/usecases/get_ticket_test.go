package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
)

func TestGetTicketUseCase_ReturnsUpdatesWithRenderedHTML(t *testing.T) {
	existing := openTicket(t, 5)

	ticketRepo := &mockTicketRepository{
		GetByNumberFunc: func(ctx context.Context, number uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(42), number)
			return existing, nil
		},
	}
	updateRepo := &mockUpdateRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
			status := vo.StatusInProgress
			u1, err := ticket.NewUpdate(existing.ID(), 10, "Dispatched a technician", nil)
			require.NoError(t, err)
			require.NoError(t, u1.SetID(1))
			u2, err := ticket.NewUpdate(existing.ID(), 10, "Status changed to in_progress", &status)
			require.NoError(t, err)
			require.NoError(t, u2.SetID(2))
			return []*ticket.Update{u1, u2}, nil
		},
	}
	clientRepo := &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*client.Client, error) {
			c, err := client.NewClient("Acme Power", "12345678", "Jo Field", "555-0101", "ops@acme.test", "1 Plant Rd")
			require.NoError(t, err)
			require.NoError(t, c.SetID(id))
			return c, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, updateRepo, clientRepo, &mockMarkdownService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{
		Session: adminSession(),
		Number:  42,
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Power", result.ClientName)
	require.Len(t, result.Updates, 2)
	assert.Equal(t, "<p>Dispatched a technician</p>", result.Updates[0].ContentHTML)
	require.NotNil(t, result.Updates[1].NewStatus)
	assert.Equal(t, "in_progress", *result.Updates[1].NewStatus)
}

func TestGetTicketUseCase_ScopedCallerSeesOnlyOwnClient(t *testing.T) {
	existing := openTicket(t, 5)

	ticketRepo := &mockTicketRepository{
		GetByNumberFunc: func(ctx context.Context, number uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	otherClient := uint(8)
	uc := NewGetTicketUseCase(ticketRepo, &mockUpdateRepository{}, &mockClientRepository{}, &mockMarkdownService{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetTicketQuery{
		Session: session.Session{
			Kind:     session.KindReal,
			Role:     authorization.RoleAuditor,
			ClientID: &otherClient,
		},
		Number: 42,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetTicketUseCase_AuditorOfSameClientCanRead(t *testing.T) {
	existing := openTicket(t, 5)

	ticketRepo := &mockTicketRepository{
		GetByNumberFunc: func(ctx context.Context, number uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	sameClient := uint(5)
	uc := NewGetTicketUseCase(ticketRepo, &mockUpdateRepository{}, &mockClientRepository{}, &mockMarkdownService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{
		Session: session.Session{
			Kind:     session.KindReal,
			Role:     authorization.RoleAuditor,
			ClientID: &sameClient,
		},
		Number: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.Number)
}
