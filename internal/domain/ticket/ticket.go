package ticket

import (
	"fmt"
	"time"

	vo "fieldesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id           uint
	number       uint
	title        string
	description  string
	category     vo.Category
	priority     vo.Priority
	status       vo.TicketStatus
	clientID     uint
	contractID   *uint
	equipmentID  *uint
	creatorID    uint
	technicianID *uint
	location     string
	imageURL     *string
	openedAt     time.Time
	closedAt     *time.Time
}

func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	clientID uint,
	creatorID uint,
	location string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		clientID:    clientID,
		creatorID:   creatorID,
		location:    location,
		openedAt:    time.Now().UTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	number uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	clientID uint,
	contractID *uint,
	equipmentID *uint,
	creatorID uint,
	technicianID *uint,
	location string,
	imageURL *string,
	openedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if status.IsTerminal() && closedAt == nil {
		return nil, fmt.Errorf("terminal ticket must carry a closed timestamp")
	}
	if !status.IsTerminal() && closedAt != nil {
		return nil, fmt.Errorf("non-terminal ticket cannot carry a closed timestamp")
	}

	return &Ticket{
		id:           id,
		number:       number,
		title:        title,
		description:  description,
		category:     category,
		priority:     priority,
		status:       status,
		clientID:     clientID,
		contractID:   contractID,
		equipmentID:  equipmentID,
		creatorID:    creatorID,
		technicianID: technicianID,
		location:     location,
		imageURL:     imageURL,
		openedAt:     openedAt,
		closedAt:     closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() uint {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ClientID() uint {
	return t.clientID
}

func (t *Ticket) ContractID() *uint {
	return t.contractID
}

func (t *Ticket) EquipmentID() *uint {
	return t.equipmentID
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) TechnicianID() *uint {
	return t.technicianID
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) ImageURL() *string {
	return t.imageURL
}

func (t *Ticket) OpenedAt() time.Time {
	return t.openedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number uint) error {
	if t.number != 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if number == 0 {
		return fmt.Errorf("ticket number cannot be zero")
	}
	t.number = number
	return nil
}

// SetContract links the ticket to a contract. The caller must have verified
// that the contract belongs to the ticket's client.
func (t *Ticket) SetContract(contractID uint) error {
	if contractID == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	t.contractID = &contractID
	return nil
}

// SetEquipment links the ticket to an equipment record. The caller must have
// verified that the equipment belongs to the ticket's client.
func (t *Ticket) SetEquipment(equipmentID uint) error {
	if equipmentID == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	t.equipmentID = &equipmentID
	return nil
}

func (t *Ticket) AssignTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot assign technician to a %s ticket", t.status)
	}

	t.technicianID = &technicianID
	return nil
}

// ChangeStatus moves the ticket through the lifecycle. Transitions are
// validated against the status table; the closed timestamp is set exactly
// when a terminal status is entered.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus

	if newStatus.IsTerminal() {
		now := time.Now().UTC()
		t.closedAt = &now
	}

	return nil
}

func (t *Ticket) AttachImage(url string) error {
	if len(url) == 0 {
		return fmt.Errorf("image URL cannot be empty")
	}
	t.imageURL = &url
	return nil
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.clientID == 0 {
		return fmt.Errorf("client ID is required")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	return nil
}
