package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldesk/internal/domain/client"
	"fieldesk/internal/infrastructure/persistence/mappers"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/db"
)

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"document":       model.Document,
			"contact_person": model.ContactPerson,
			"phone":          model.Phone,
			"email":          model.Email,
			"address":        model.Address,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var clientModels []models.ClientModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(clientModels))
	for i, model := range clientModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		clients[i] = c
	}

	return clients, nil
}

func (r *ClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check client existence: %w", err)
	}

	return count > 0, nil
}
