package mappers

import (
	"time"

	"gorm.io/datatypes"

	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/domain/identity"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/authorization"
)

type ProfileMapper struct{}

func NewProfileMapper() ProfileMapper {
	return ProfileMapper{}
}

func (ProfileMapper) ToModel(p *identity.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:        p.ID(),
		Email:     p.Email(),
		FullName:  p.FullName(),
		Role:      p.Role().String(),
		ClientID:  p.ClientID(),
		CreatedAt: p.CreatedAt().UnixMilli(),
	}
}

func (ProfileMapper) ToDomain(model *models.ProfileModel) (*identity.Profile, error) {
	role, err := authorization.ParseRole(model.Role)
	if err != nil {
		return nil, err
	}

	return identity.ReconstructProfile(
		model.ID,
		model.Email,
		model.FullName,
		role,
		model.ClientID,
		millisToTime(model.CreatedAt),
	)
}

type ClientMapper struct{}

func NewClientMapper() ClientMapper {
	return ClientMapper{}
}

func (ClientMapper) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:            c.ID(),
		Name:          c.Name(),
		Document:      c.Document(),
		ContactPerson: c.ContactPerson(),
		Phone:         c.Phone(),
		Email:         c.Email(),
		Address:       c.Address(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
	}
}

func (ClientMapper) ToDomain(model *models.ClientModel) (*client.Client, error) {
	return client.ReconstructClient(
		model.ID,
		model.Name,
		model.Document,
		model.ContactPerson,
		model.Phone,
		model.Email,
		model.Address,
		millisToTime(model.CreatedAt),
	)
}

type ContractMapper struct{}

func NewContractMapper() ContractMapper {
	return ContractMapper{}
}

func (ContractMapper) ToModel(c *contract.Contract) *models.ContractModel {
	model := &models.ContractModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Number:    c.Number(),
		ClientID:  c.ClientID(),
		StartDate: datatypes.Date(c.StartDate()),
		Status:    c.Status().String(),
	}

	if c.EndDate() != nil {
		end := datatypes.Date(*c.EndDate())
		model.EndDate = &end
	}

	return model
}

func (ContractMapper) ToDomain(model *models.ContractModel) (*contract.Contract, error) {
	status, err := contract.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if model.EndDate != nil {
		end := time.Time(*model.EndDate)
		endDate = &end
	}

	return contract.ReconstructContract(
		model.ID,
		model.Name,
		model.Number,
		model.ClientID,
		time.Time(model.StartDate),
		endDate,
		status,
	)
}

type EquipmentMapper struct{}

func NewEquipmentMapper() EquipmentMapper {
	return EquipmentMapper{}
}

func (EquipmentMapper) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:           e.ID(),
		Name:         e.Name(),
		Type:         e.Type(),
		Model:        e.Model(),
		SerialNumber: e.SerialNumber(),
		Location:     e.Location(),
		ClientID:     e.ClientID(),
		ContractID:   e.ContractID(),
	}
}

func (EquipmentMapper) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	return equipment.ReconstructEquipment(
		model.ID,
		model.Name,
		model.Type,
		model.Model,
		model.SerialNumber,
		model.Location,
		model.ClientID,
		model.ContractID,
	)
}
