// Package models defines the gorm persistence models. Relationships are
// managed by application business logic; no foreign key constraints are
// declared here.
package models

import "gorm.io/datatypes"

type ProfileModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	FullName  string `gorm:"size:200;not null"`
	Role      string `gorm:"size:20;not null;index"`
	ClientID  *uint  `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

type CredentialModel struct {
	ProfileID    uint   `gorm:"primaryKey"`
	PasswordHash string `gorm:"size:255;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CredentialModel) TableName() string {
	return "user_credentials"
}

type ClientModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:200;not null;index"`
	Document      string `gorm:"size:50"`
	ContactPerson string `gorm:"size:200"`
	Phone         string `gorm:"size:50"`
	Email         string `gorm:"size:255"`
	Address       string `gorm:"size:500"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}

type ContractModel struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"size:200;not null"`
	Number    string          `gorm:"uniqueIndex;size:50;not null"`
	ClientID  uint            `gorm:"not null;index"`
	StartDate datatypes.Date  `gorm:"not null"`
	EndDate   *datatypes.Date ``
	Status    string          `gorm:"size:20;not null;index"`
	CreatedAt int64           `gorm:"autoCreateTime:milli;not null"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

type EquipmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Type         string `gorm:"size:100"`
	Model        string `gorm:"size:200"`
	SerialNumber string `gorm:"size:100;index"`
	Location     string `gorm:"size:500"`
	ClientID     uint   `gorm:"not null;index"`
	ContractID   *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	Number       uint   `gorm:"uniqueIndex;not null"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text;not null"`
	Category     string `gorm:"size:50;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	ClientID     uint   `gorm:"not null;index"`
	ContractID   *uint  `gorm:"index"`
	EquipmentID  *uint  `gorm:"index"`
	CreatorID    uint   `gorm:"not null;index"`
	TechnicianID *uint  `gorm:"index"`
	Location     string `gorm:"size:500"`
	ImageURL     *string
	OpenedAt     int64 `gorm:"not null;index"`
	ClosedAt     *int64
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketUpdateModel struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"not null;index"`
	UserID    uint    `gorm:"not null;index"`
	Content   string  `gorm:"type:text;not null"`
	NewStatus *string `gorm:"size:20"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketUpdateModel) TableName() string {
	return "ticket_updates"
}
