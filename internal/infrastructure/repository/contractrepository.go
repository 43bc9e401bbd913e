package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldesk/internal/domain/contract"
	"fieldesk/internal/infrastructure/persistence/mappers"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
)

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{
		db:     db,
		mapper: mappers.NewContractMapper(),
	}
}

func (r *ContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contract: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ContractModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"number":     model.Number,
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"status":     model.Status,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}

	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*contract.Contract, error) {
	var model models.ContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("contract not found")
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ContractRepository) List(
	ctx context.Context,
	scope authorization.Scope,
) ([]*contract.Contract, error) {
	if scope.IsEmpty() {
		return []*contract.Contract{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ContractModel{})

	if scope.ClientID != nil {
		query = query.Where("client_id = ?", *scope.ClientID)
	}

	var contractModels []models.ContractModel
	if err := query.
		Order("start_date DESC").
		Find(&contractModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]*contract.Contract, len(contractModels))
	for i, model := range contractModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		contracts[i] = c
	}

	return contracts, nil
}
