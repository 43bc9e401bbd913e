package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fieldesk/internal/domain/ticket"
	vo "fieldesk/internal/domain/ticket/valueobjects"
	"fieldesk/internal/infrastructure/persistence/mappers"
	"fieldesk/internal/infrastructure/persistence/models"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":        true,
	"number":    true,
	"title":     true,
	"status":    true,
	"priority":  true,
	"category":  true,
	"opened_at": true,
	"closed_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.Number == 0 {
		number, err := r.nextNumber(tx)
		if err != nil {
			return err
		}
		if err := t.SetNumber(number); err != nil {
			return err
		}
		model.Number = number
	}

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// nextNumber allocates the next sequential display number. Concurrent saves
// can read the same MAX; the uk_tickets_number unique key rejects the loser's
// insert rather than ever storing a duplicate number.
func (r *TicketRepository) nextNumber(tx *gorm.DB) (uint, error) {
	var current uint
	err := tx.Model(&models.TicketModel{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate ticket number: %w", err)
	}
	return current + 1, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"description":   model.Description,
			"category":      model.Category,
			"priority":      model.Priority,
			"status":        model.Status,
			"contract_id":   model.ContractID,
			"equipment_id":  model.EquipmentID,
			"technician_id": model.TechnicianID,
			"location":      model.Location,
			"image_url":     model.ImageURL,
			"closed_at":     model.ClosedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	if filter.Scope.IsEmpty() {
		return []*ticket.Ticket{}, 0, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	// Row scope is part of the query itself, never a post-filter.
	if filter.Scope.ClientID != nil {
		query = query.Where("tickets.client_id = ?", *filter.Scope.ClientID)
	}

	if filter.Status != nil {
		query = query.Where("tickets.status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("tickets.priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("tickets.category = ?", filter.Category.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("tickets.creator_id = ?", *filter.CreatorID)
	}
	if filter.Technician != nil {
		query = query.Where("tickets.technician_id = ?", *filter.Technician)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN clients ON clients.id = tickets.client_id").
			Where("tickets.title LIKE ? OR tickets.description LIKE ? OR clients.name LIKE ?",
				pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order("tickets." + sortBy + " " + order)
	} else {
		query = query.Order("tickets.opened_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(
	ctx context.Context,
	scope authorization.Scope,
) (map[vo.TicketStatus]int64, error) {
	if scope.IsEmpty() {
		return map[vo.TicketStatus]int64{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if scope.ClientID != nil {
		query = query.Where("client_id = ?", *scope.ClientID)
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		status, err := vo.NewTicketStatus(row.Status)
		if err != nil {
			return nil, err
		}
		counts[status] = row.Count
	}

	return counts, nil
}

type TicketUpdateRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketUpdateRepository(db *gorm.DB) *TicketUpdateRepository {
	return &TicketUpdateRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketUpdateRepository) Save(ctx context.Context, u *ticket.Update) error {
	model := r.mapper.UpdateToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket update: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *TicketUpdateRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
	var updateModels []models.TicketUpdateModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&updateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find ticket updates: %w", err)
	}

	updates := make([]*ticket.Update, len(updateModels))
	for i, model := range updateModels {
		u, err := r.mapper.UpdateToDomain(&model)
		if err != nil {
			return nil, err
		}
		updates[i] = u
	}

	return updates, nil
}
