package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldesk/internal/domain/equipment"
	"fieldesk/internal/infrastructure/persistence/mappers"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"type":          model.Type,
			"model":         model.Model,
			"serial_number": model.SerialNumber,
			"location":      model.Location,
			"contract_id":   model.ContractID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) List(
	ctx context.Context,
	scope authorization.Scope,
) ([]*equipment.Equipment, error) {
	if scope.IsEmpty() {
		return []*equipment.Equipment{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EquipmentModel{})

	if scope.ClientID != nil {
		query = query.Where("client_id = ?", *scope.ClientID)
	}

	var equipmentModels []models.EquipmentModel
	if err := query.
		Order("name ASC").
		Find(&equipmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	items := make([]*equipment.Equipment, len(equipmentModels))
	for i, model := range equipmentModels {
		e, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		items[i] = e
	}

	return items, nil
}
