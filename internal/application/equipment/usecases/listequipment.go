package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/shared/logger"
)

type EquipmentDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Location     string `json:"location"`
	ClientID     uint   `json:"client_id"`
	ContractID   *uint  `json:"contract_id,omitempty"`
}

type ListEquipmentCommand struct {
	Session session.Session
}

type ListEquipmentResult struct {
	Equipment []EquipmentDTO
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.Repository, log logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{equipmentRepo: equipmentRepo, logger: log}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, cmd ListEquipmentCommand) (*ListEquipmentResult, error) {
	items, err := uc.equipmentRepo.List(ctx, cmd.Session.Scope())
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	dtos := make([]EquipmentDTO, 0, len(items))
	for _, e := range items {
		dtos = append(dtos, EquipmentDTO{
			ID:           e.ID(),
			Name:         e.Name(),
			Type:         e.Type(),
			Model:        e.Model(),
			SerialNumber: e.SerialNumber(),
			Location:     e.Location(),
			ClientID:     e.ClientID(),
			ContractID:   e.ContractID(),
		})
	}

	return &ListEquipmentResult{Equipment: dtos}, nil
}
