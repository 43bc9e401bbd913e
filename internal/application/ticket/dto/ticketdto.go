package dto

import (
	"time"

	"fieldesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID           uint        `json:"id"`
	Number       uint        `json:"number"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Priority     string      `json:"priority"`
	Status       string      `json:"status"`
	ClientID     uint        `json:"client_id"`
	ClientName   string      `json:"client_name,omitempty"`
	ContractID   *uint       `json:"contract_id"`
	EquipmentID  *uint       `json:"equipment_id"`
	CreatorID    uint        `json:"creator_id"`
	TechnicianID *uint       `json:"technician_id"`
	Location     string      `json:"location"`
	ImageURL     *string     `json:"image_url"`
	OpenedAt     time.Time   `json:"opened_at"`
	ClosedAt     *time.Time  `json:"closed_at"`
	Updates      []UpdateDTO `json:"updates,omitempty"`
}

type UpdateDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	// ContentHTML is the sanitized rendering of Content.
	ContentHTML string    `json:"content_html,omitempty"`
	NewStatus   *string   `json:"new_status"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID           uint       `json:"id"`
	Number       uint       `json:"number"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ClientID     uint       `json:"client_id"`
	TechnicianID *uint      `json:"technician_id"`
	OpenedAt     time.Time  `json:"opened_at"`
	ClosedAt     *time.Time `json:"closed_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		Title:        t.Title(),
		Description:  t.Description(),
		Category:     t.Category().String(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		ClientID:     t.ClientID(),
		ContractID:   t.ContractID(),
		EquipmentID:  t.EquipmentID(),
		CreatorID:    t.CreatorID(),
		TechnicianID: t.TechnicianID(),
		Location:     t.Location(),
		ImageURL:     t.ImageURL(),
		OpenedAt:     t.OpenedAt(),
		ClosedAt:     t.ClosedAt(),
	}
}

func ToUpdateDTO(u *ticket.Update, contentHTML string) UpdateDTO {
	var newStatus *string
	if s := u.NewStatus(); s != nil {
		v := s.String()
		newStatus = &v
	}

	return UpdateDTO{
		ID:          u.ID(),
		UserID:      u.UserID(),
		Content:     u.Content(),
		ContentHTML: contentHTML,
		NewStatus:   newStatus,
		CreatedAt:   u.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		Title:        t.Title(),
		Category:     t.Category().String(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		ClientID:     t.ClientID(),
		TechnicianID: t.TechnicianID(),
		OpenedAt:     t.OpenedAt(),
		ClosedAt:     t.ClosedAt(),
	}
}
