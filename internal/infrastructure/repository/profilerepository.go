package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fieldesk/internal/domain/identity"
	"fieldesk/internal/infrastructure/persistence/mappers"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/db"
	apperrors "fieldesk/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProfileRepository) Update(ctx context.Context, p *identity.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name": model.FullName,
			"role":      model.Role,
			"client_id": model.ClientID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*identity.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*identity.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) List(ctx context.Context) ([]*identity.Profile, error) {
	var profileModels []models.ProfileModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Order("full_name ASC").
		Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*identity.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}

	return profiles, nil
}

// CredentialRepository stores password hashes separately from profiles so
// that demonstration profiles never carry a credential row.
type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) SaveCredential(ctx context.Context, profileID uint, passwordHash string) error {
	model := &models.CredentialModel{
		ProfileID:    profileID,
		PasswordHash: passwordHash,
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) GetCredential(ctx context.Context, profileID uint) (string, error) {
	var model models.CredentialModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("profile_id = ?", profileID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("credential not found")
		}
		return "", fmt.Errorf("failed to find credential: %w", err)
	}

	return model.PasswordHash, nil
}

func isDuplicateKeyError(err error) bool {
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
