package usecases

import (
	"context"
	"fmt"
	"time"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type RecordUpdateCommand struct {
	Session  session.Session
	TicketID uint
	Content  string
	// NewStatus, when set, transitions the ticket as part of the same
	// update.
	NewStatus *string
}

type RecordUpdateResult struct {
	UpdateID  uint
	Status    string
	CreatedAt time.Time
}

// RecordUpdateUseCase appends a note to the ticket feed and, when the note
// carries a status, transitions the ticket. Both writes commit in one
// transaction: the feed never shows a transition the ticket does not have,
// and vice versa.
type RecordUpdateUseCase struct {
	ticketRepo ticket.Repository
	updateRepo ticket.UpdateRepository
	txMgr      db.TxManager
	logger     logger.Interface
}

func NewRecordUpdateUseCase(
	ticketRepo ticket.Repository,
	updateRepo ticket.UpdateRepository,
	txMgr db.TxManager,
	log logger.Interface,
) *RecordUpdateUseCase {
	return &RecordUpdateUseCase{
		ticketRepo: ticketRepo,
		updateRepo: updateRepo,
		txMgr:      txMgr,
		logger:     log,
	}
}

func (uc *RecordUpdateUseCase) Execute(ctx context.Context, cmd RecordUpdateCommand) (*RecordUpdateResult, error) {
	action := authorization.ActionTicketComment
	if cmd.NewStatus != nil {
		action = authorization.ActionTicketChangeStatus
	}
	if err := requireMutation(cmd.Session, action); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err := requireVisible(cmd.Session, t); err != nil {
		return nil, err
	}

	var newStatus *vo.TicketStatus
	transition := false
	content := cmd.Content
	if cmd.NewStatus != nil {
		status, err := vo.NewTicketStatus(*cmd.NewStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		// Restating the current status is a plain note, not a transition.
		if status != t.Status() {
			if !t.Status().CanTransitionTo(status) {
				return nil, errors.NewValidationError(
					fmt.Sprintf("cannot transition from %s to %s", t.Status(), status))
			}
			transition = true
		}
		newStatus = &status
		if content == "" {
			content = "Status changed to " + status.String()
		}
	}

	update, err := ticket.NewUpdate(t.ID(), cmd.Session.ProfileID, content, newStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.updateRepo.Save(txCtx, update); err != nil {
			return fmt.Errorf("failed to save update: %w", err)
		}

		if transition {
			if err := t.ChangeStatus(*newStatus); err != nil {
				return err
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return fmt.Errorf("failed to update ticket: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record update", "error", err, "ticket_id", cmd.TicketID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record update: %w", err)
	}

	uc.logger.Infow("ticket update recorded",
		"ticket_id", t.ID(),
		"update_id", update.ID(),
		"status", t.Status().String())

	return &RecordUpdateResult{
		UpdateID:  update.ID(),
		Status:    t.Status().String(),
		CreatedAt: update.CreatedAt(),
	}, nil
}
