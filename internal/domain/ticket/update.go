package ticket

import (
	"fmt"
	"time"

	vo "fieldesk/internal/domain/ticket/valueobjects"
)

// Update is an append-only note on a ticket. It optionally records the status
// the ticket transitioned to. Updates are immutable once created.
type Update struct {
	id        uint
	ticketID  uint
	userID    uint
	content   string
	newStatus *vo.TicketStatus
	createdAt time.Time
}

func NewUpdate(
	ticketID uint,
	userID uint,
	content string,
	newStatus *vo.TicketStatus,
) (*Update, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 && newStatus == nil {
		return nil, fmt.Errorf("update requires content or a status change")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}
	if newStatus != nil && !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", *newStatus)
	}

	return &Update{
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		newStatus: newStatus,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructUpdate(
	id uint,
	ticketID uint,
	userID uint,
	content string,
	newStatus *vo.TicketStatus,
	createdAt time.Time,
) (*Update, error) {
	if id == 0 {
		return nil, fmt.Errorf("update ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Update{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		newStatus: newStatus,
		createdAt: createdAt,
	}, nil
}

func (u *Update) ID() uint {
	return u.id
}

func (u *Update) TicketID() uint {
	return u.ticketID
}

func (u *Update) UserID() uint {
	return u.userID
}

func (u *Update) Content() string {
	return u.content
}

func (u *Update) NewStatus() *vo.TicketStatus {
	return u.newStatus
}

func (u *Update) CreatedAt() time.Time {
	return u.createdAt
}

func (u *Update) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("update ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("update ID cannot be zero")
	}
	u.id = id
	return nil
}
