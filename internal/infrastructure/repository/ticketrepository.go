package repository

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"tasksync/internal/application/webhook/usecases"
	"tasksync/internal/infrastructure/persistence/models"
	"tasksync/internal/shared/logger"
)

// TicketRepository persists tickets and project status labels. Rich
// text coming from webhook payloads is sanitized before it is stored.
type TicketRepository struct {
	db        *gorm.DB
	logger    logger.Interface
	sanitizer *bluemonday.Policy
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:        db,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (r *TicketRepository) CreateTicket(ctx context.Context, fields map[string]any) (uint, error) {
	values := r.sanitizeFields(fields)

	model := &models.TicketModel{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Updates(values).Error
	})
	if err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return 0, fmt.Errorf("failed to create ticket: %w", err)
	}
	return model.ID, nil
}

func (r *TicketRepository) PatchTicket(ctx context.Context, ticketID uint, fields map[string]any) error {
	values := r.sanitizeFields(fields)
	if len(values) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Updates(values)
	if result.Error != nil {
		r.logger.Errorw("failed to patch ticket", "ticket_id", ticketID, "error", result.Error)
		return fmt.Errorf("failed to patch ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, ticketID uint) (*usecases.TicketInfo, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Select("id", "tags", "depending_ticket_id").
		Where("id = ?", ticketID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &usecases.TicketInfo{
		ID:       model.ID,
		Tags:     model.Tags,
		ParentID: model.DependingTicketID,
	}, nil
}

// ResolveStatusID resolves a status label by exact name within a
// project. The second return reports whether a match was found.
func (r *TicketRepository) ResolveStatusID(ctx context.Context, label string, projectID uint) (uint, bool, error) {
	var model models.StatusLabelModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND name = ?", projectID, label).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, false, nil
		}
		r.logger.Errorw("failed to resolve status label", "label", label, "error", err)
		return 0, false, fmt.Errorf("failed to resolve status label: %w", err)
	}
	return model.ID, true, nil
}

func (r *TicketRepository) ListStatusLabels(ctx context.Context, projectID uint) ([]usecases.StatusLabel, error) {
	var modelList []*models.StatusLabelModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list status labels", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list status labels: %w", err)
	}

	labels := make([]usecases.StatusLabel, 0, len(modelList))
	for _, model := range modelList {
		labels = append(labels, usecases.StatusLabel{
			ID:         model.ID,
			Name:       model.Name,
			StatusType: model.StatusType,
		})
	}
	return labels, nil
}

func (r *TicketRepository) ProjectExists(ctx context.Context, projectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("id = ?", projectID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check project", "project_id", projectID, "error", err)
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return count > 0, nil
}

var sanitizedTicketFields = map[string]bool{
	"headline":            true,
	"description":         true,
	"acceptance_criteria": true,
}

func (r *TicketRepository) sanitizeFields(fields map[string]any) map[string]any {
	values := make(map[string]any, len(fields))
	for key, value := range fields {
		if sanitizedTicketFields[key] {
			if text, ok := value.(string); ok {
				values[key] = r.sanitizer.Sanitize(text)
				continue
			}
		}
		values[key] = value
	}
	return values
}
