package contract

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusExpired   Status = "expired"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusSuspended || s == StatusExpired
}

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid contract status: %s", s)
	}
	return status, nil
}

// Contract is a service agreement owned by a client.
type Contract struct {
	id        uint
	name      string
	number    string
	clientID  uint
	startDate time.Time
	endDate   *time.Time
	status    Status
}

func NewContract(name, number string, clientID uint, startDate time.Time, endDate *time.Time) (*Contract, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("contract number is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot precede start date")
	}

	return &Contract{
		name:      name,
		number:    number,
		clientID:  clientID,
		startDate: startDate,
		endDate:   endDate,
		status:    StatusActive,
	}, nil
}

func ReconstructContract(
	id uint,
	name, number string,
	clientID uint,
	startDate time.Time,
	endDate *time.Time,
	status Status,
) (*Contract, error) {
	if id == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid contract status: %s", status)
	}

	return &Contract{
		id:        id,
		name:      name,
		number:    number,
		clientID:  clientID,
		startDate: startDate,
		endDate:   endDate,
		status:    status,
	}, nil
}

func (c *Contract) ID() uint {
	return c.id
}

func (c *Contract) Name() string {
	return c.name
}

func (c *Contract) Number() string {
	return c.number
}

func (c *Contract) ClientID() uint {
	return c.clientID
}

func (c *Contract) StartDate() time.Time {
	return c.startDate
}

func (c *Contract) EndDate() *time.Time {
	return c.endDate
}

func (c *Contract) Status() Status {
	return c.status
}

func (c *Contract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Contract) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid contract status: %s", status)
	}
	c.status = status
	return nil
}

// BelongsTo reports whether the contract is owned by the given client.
func (c *Contract) BelongsTo(clientID uint) bool {
	return c.clientID == clientID
}
