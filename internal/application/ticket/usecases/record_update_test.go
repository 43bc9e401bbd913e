package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
)

func openTicket(t *testing.T, clientID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		1, 42, "Generator overheating", "Unit shuts down after an hour",
		vo.CategoryGenerator, vo.PriorityHigh, vo.StatusOpen,
		clientID, nil, nil, 10, nil, "Plant 3", nil,
		time.Now().Add(-2*time.Hour), nil,
	)
	require.NoError(t, err)
	return tk
}

func adminSession() session.Session {
	return session.Session{
		Kind:      session.KindReal,
		SessionID: "sess-1",
		ProfileID: 10,
		Role:      authorization.RoleAdmin,
	}
}

func TestRecordUpdateUseCase_NoteOnly(t *testing.T) {
	existing := openTicket(t, 5)

	var savedUpdate *ticket.Update
	var ticketUpdated bool

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	updateRepo := &mockUpdateRepository{
		SaveFunc: func(ctx context.Context, u *ticket.Update) error {
			require.NoError(t, u.SetID(100))
			savedUpdate = u
			return nil
		},
	}

	uc := NewRecordUpdateUseCase(ticketRepo, updateRepo, &mockTxManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session:  adminSession(),
		TicketID: 1,
		Content:  "Replaced the coolant pump",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.UpdateID)
	assert.Equal(t, "open", result.Status)
	require.NotNil(t, savedUpdate)
	assert.Nil(t, savedUpdate.NewStatus())
	assert.False(t, ticketUpdated, "a plain note must not touch the ticket row")
}

func TestRecordUpdateUseCase_StatusChangeGeneratesNote(t *testing.T) {
	existing := openTicket(t, 5)

	var savedUpdate *ticket.Update
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	updateRepo := &mockUpdateRepository{
		SaveFunc: func(ctx context.Context, u *ticket.Update) error {
			require.NoError(t, u.SetID(101))
			savedUpdate = u
			return nil
		},
	}

	uc := NewRecordUpdateUseCase(ticketRepo, updateRepo, &mockTxManager{}, &mockLogger{})
	newStatus := "in_progress"
	result, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session:   adminSession(),
		TicketID:  1,
		NewStatus: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	require.NotNil(t, savedUpdate)
	assert.Equal(t, "Status changed to in_progress", savedUpdate.Content())
	require.NotNil(t, savedUpdate.NewStatus())
	assert.Equal(t, vo.StatusInProgress, *savedUpdate.NewStatus())
}

func TestRecordUpdateUseCase_RestatedStatusIsNoteOnly(t *testing.T) {
	existing := openTicket(t, 5)

	var savedUpdate *ticket.Update
	var ticketUpdated bool
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	updateRepo := &mockUpdateRepository{
		SaveFunc: func(ctx context.Context, u *ticket.Update) error {
			require.NoError(t, u.SetID(102))
			savedUpdate = u
			return nil
		},
	}

	uc := NewRecordUpdateUseCase(ticketRepo, updateRepo, &mockTxManager{}, &mockLogger{})
	sameStatus := "open"
	result, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session:   adminSession(),
		TicketID:  1,
		Content:   "Still waiting on the client for access",
		NewStatus: &sameStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "open", result.Status)
	require.NotNil(t, savedUpdate)
	require.NotNil(t, savedUpdate.NewStatus())
	assert.Equal(t, vo.StatusOpen, *savedUpdate.NewStatus())
	assert.False(t, ticketUpdated, "restating the current status must not touch the ticket row")
}

func TestRecordUpdateUseCase_InvalidTransitionRejected(t *testing.T) {
	closedAt := time.Now()
	existing, err := ticket.ReconstructTicket(
		1, 42, "Done ticket", "desc",
		vo.CategoryIT, vo.PriorityNormal, vo.StatusCompleted,
		5, nil, nil, 10, nil, "", nil,
		time.Now().Add(-2*time.Hour), &closedAt,
	)
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	updateRepo := &mockUpdateRepository{
		SaveFunc: func(ctx context.Context, u *ticket.Update) error {
			t.Fatal("update must not be saved for an invalid transition")
			return nil
		},
	}

	uc := NewRecordUpdateUseCase(ticketRepo, updateRepo, &mockTxManager{}, &mockLogger{})
	newStatus := "open"
	_, err = uc.Execute(context.Background(), RecordUpdateCommand{
		Session:   adminSession(),
		TicketID:  1,
		NewStatus: &newStatus,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRecordUpdateUseCase_BothWritesShareTransaction(t *testing.T) {
	existing := openTicket(t, 5)

	var txActive bool
	var updateSavedInTx, ticketUpdatedInTx bool

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			ticketUpdatedInTx = txActive
			return nil
		},
	}
	updateRepo := &mockUpdateRepository{
		SaveFunc: func(ctx context.Context, u *ticket.Update) error {
			require.NoError(t, u.SetID(102))
			updateSavedInTx = txActive
			return nil
		},
	}
	txMgr := &mockTxManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txActive = true
			defer func() { txActive = false }()
			return fn(ctx)
		},
	}

	uc := NewRecordUpdateUseCase(ticketRepo, updateRepo, txMgr, &mockLogger{})
	newStatus := "cancelled"
	content := "Duplicate of ticket 41"
	_, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session:   adminSession(),
		TicketID:  1,
		Content:   content,
		NewStatus: &newStatus,
	})

	require.NoError(t, err)
	assert.True(t, updateSavedInTx)
	assert.True(t, ticketUpdatedInTx)
}

func TestRecordUpdateUseCase_ScopedCallerCannotTouchOtherClient(t *testing.T) {
	existing := openTicket(t, 5)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	otherClient := uint(9)
	uc := NewRecordUpdateUseCase(ticketRepo, &mockUpdateRepository{}, &mockTxManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session: session.Session{
			Kind:      session.KindReal,
			ProfileID: 20,
			Role:      authorization.RoleClientUser,
			ClientID:  &otherClient,
		},
		TicketID: 1,
		Content:  "note",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "cross-client access must look like a missing ticket")
}

func TestRecordUpdateUseCase_SimulatedSessionRejected(t *testing.T) {
	uc := NewRecordUpdateUseCase(&mockTicketRepository{}, &mockUpdateRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session:  session.NewSimulatedSession("demo-1", authorization.RoleAdmin, nil),
		TicketID: 1,
		Content:  "note",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestRecordUpdateUseCase_AuditorRejected(t *testing.T) {
	clientID := uint(5)
	uc := NewRecordUpdateUseCase(&mockTicketRepository{}, &mockUpdateRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RecordUpdateCommand{
		Session: session.Session{
			Kind:      session.KindReal,
			ProfileID: 30,
			Role:      authorization.RoleAuditor,
			ClientID:  &clientID,
		},
		TicketID: 1,
		Content:  "note",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
