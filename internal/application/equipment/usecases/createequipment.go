package usecases

import (
	"context"
	"fmt"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/client"
	"fieldesk/internal/domain/contract"
	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	Session      session.Session
	Name         string
	Type         string
	Model        string
	SerialNumber string
	Location     string
	ClientID     uint
	ContractID   *uint
}

type CreateEquipmentResult struct {
	EquipmentID uint
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	clientRepo    client.Repository
	contractRepo  contract.Repository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(
	equipmentRepo equipment.Repository,
	clientRepo client.Repository,
	contractRepo contract.Repository,
	log logger.Interface,
) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		clientRepo:    clientRepo,
		contractRepo:  contractRepo,
		logger:        log,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error) {
	if cmd.Session.Simulated() {
		return nil, errors.NewForbiddenError("demo sessions are read-only")
	}
	if !authorization.MutationAllowed(cmd.Session.Role, authorization.ActionEquipmentCreate) {
		return nil, errors.NewForbiddenError("role is not allowed to register equipment")
	}

	exists, err := uc.clientRepo.Exists(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to check client", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, errors.NewValidationError("client does not exist")
	}

	if cmd.ContractID != nil {
		c, err := uc.contractRepo.GetByID(ctx, *cmd.ContractID)
		if err != nil {
			return nil, errors.NewValidationError("contract does not exist")
		}
		if !c.BelongsTo(cmd.ClientID) {
			return nil, errors.NewValidationError("contract belongs to a different client")
		}
	}

	e, err := equipment.NewEquipment(cmd.Name, cmd.Type, cmd.Model, cmd.SerialNumber, cmd.Location, cmd.ClientID, cmd.ContractID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Save(ctx, e); err != nil {
		uc.logger.Errorw("failed to save equipment", "error", err)
		return nil, fmt.Errorf("failed to save equipment: %w", err)
	}

	uc.logger.Infow("equipment registered", "equipment_id", e.ID(), "client_id", cmd.ClientID)

	return &CreateEquipmentResult{EquipmentID: e.ID()}, nil
}
