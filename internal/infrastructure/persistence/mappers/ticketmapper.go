package mappers

import (
	"time"

	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models. Malformed rows are rejected at this boundary rather
// than propagated.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	UpdateToModel(u *ticket.Update) *models.TicketUpdateModel
	UpdateToDomain(model *models.TicketUpdateModel) (*ticket.Update, error)
}

type ticketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapperImpl{}
}

func (m *ticketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
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
		OpenedAt:     t.OpenedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *ticketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		category,
		priority,
		status,
		model.ClientID,
		model.ContractID,
		model.EquipmentID,
		model.CreatorID,
		model.TechnicianID,
		model.Location,
		model.ImageURL,
		millisToTime(model.OpenedAt),
		closedAt,
	)
}

func (m *ticketMapperImpl) UpdateToModel(u *ticket.Update) *models.TicketUpdateModel {
	model := &models.TicketUpdateModel{
		ID:        u.ID(),
		TicketID:  u.TicketID(),
		UserID:    u.UserID(),
		Content:   u.Content(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}

	if u.NewStatus() != nil {
		s := u.NewStatus().String()
		model.NewStatus = &s
	}

	return model
}

func (m *ticketMapperImpl) UpdateToDomain(model *models.TicketUpdateModel) (*ticket.Update, error) {
	var newStatus *vo.TicketStatus
	if model.NewStatus != nil {
		s, err := vo.NewTicketStatus(*model.NewStatus)
		if err != nil {
			return nil, err
		}
		newStatus = &s
	}

	return ticket.ReconstructUpdate(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		newStatus,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
