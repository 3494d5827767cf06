package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasksync/internal/domain/listener"
	"tasksync/internal/infrastructure/persistence/models"
)

func (r *ListenerRepository) GetTaskMap(ctx context.Context, configID uint, clickupTaskID string) (*listener.TaskMap, error) {
	var model models.TaskMapModel
	err := r.db.WithContext(ctx).
		Where("config_id = ? AND clickup_task_id = ?", configID, clickupTaskID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get task mapping", "clickup_task_id", clickupTaskID, "error", err)
		return nil, fmt.Errorf("failed to get task mapping: %w", err)
	}
	return r.mapper.TaskMapToDomain(&model), nil
}

func (r *ListenerRepository) ListTaskMapsByParent(ctx context.Context, configID uint, parentClickupTaskID string) ([]listener.TaskMap, error) {
	var modelList []*models.TaskMapModel
	err := r.db.WithContext(ctx).
		Where("config_id = ? AND parent_clickup_task_id = ?", configID, parentClickupTaskID).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list child task mappings", "parent_clickup_task_id", parentClickupTaskID, "error", err)
		return nil, fmt.Errorf("failed to list child task mappings: %w", err)
	}

	maps := make([]listener.TaskMap, 0, len(modelList))
	for _, model := range modelList {
		maps = append(maps, *r.mapper.TaskMapToDomain(model))
	}
	return maps, nil
}

// UpsertTaskMap inserts or updates on (config_id, clickup_task_id).
// Concurrent first deliveries for the same task race on the insert;
// the loser degrades into an update of ticket_id. The parent column
// only changes when a parent value is supplied.
func (r *ListenerRepository) UpsertTaskMap(ctx context.Context, configID uint, clickupTaskID string, ticketID uint, parentClickupTaskID *string) error {
	model := &models.TaskMapModel{
		ConfigID:            configID,
		ClickupTaskID:       clickupTaskID,
		ParentClickupTaskID: parentClickupTaskID,
		TicketID:            ticketID,
	}

	assignments := []string{"ticket_id", "updated_at"}
	if parentClickupTaskID != nil {
		assignments = append(assignments, "parent_clickup_task_id")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_id"}, {Name: "clickup_task_id"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert task mapping", "clickup_task_id", clickupTaskID, "error", err)
		return fmt.Errorf("failed to upsert task mapping: %w", err)
	}
	return nil
}

func (r *ListenerRepository) UpdateTaskMapParent(ctx context.Context, configID uint, clickupTaskID string, parentClickupTaskID *string) error {
	result := r.db.WithContext(ctx).Model(&models.TaskMapModel{}).
		Where("config_id = ? AND clickup_task_id = ?", configID, clickupTaskID).
		Updates(map[string]any{
			"parent_clickup_task_id": parentClickupTaskID,
			"updated_at":             time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update task mapping parent", "clickup_task_id", clickupTaskID, "error", result.Error)
		return fmt.Errorf("failed to update task mapping parent: %w", result.Error)
	}
	return nil
}

func (r *ListenerRepository) GetCommentMap(ctx context.Context, configID uint, clickupCommentID string) (*listener.CommentMap, error) {
	var model models.CommentMapModel
	err := r.db.WithContext(ctx).
		Where("config_id = ? AND clickup_comment_id = ?", configID, clickupCommentID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get comment mapping", "clickup_comment_id", clickupCommentID, "error", err)
		return nil, fmt.Errorf("failed to get comment mapping: %w", err)
	}
	return r.mapper.CommentMapToDomain(&model), nil
}

func (r *ListenerRepository) UpsertCommentMap(ctx context.Context, configID uint, clickupCommentID, clickupTaskID string, ticketID, commentID uint) error {
	model := &models.CommentMapModel{
		ConfigID:         configID,
		ClickupCommentID: clickupCommentID,
		ClickupTaskID:    clickupTaskID,
		TicketID:         ticketID,
		CommentID:        commentID,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_id"}, {Name: "clickup_comment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"clickup_task_id", "ticket_id", "comment_id"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert comment mapping", "clickup_comment_id", clickupCommentID, "error", err)
		return fmt.Errorf("failed to upsert comment mapping: %w", err)
	}
	return nil
}

func (r *ListenerRepository) DeleteCommentMap(ctx context.Context, configID uint, clickupCommentID string) error {
	err := r.db.WithContext(ctx).
		Where("config_id = ? AND clickup_comment_id = ?", configID, clickupCommentID).
		Delete(&models.CommentMapModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete comment mapping", "clickup_comment_id", clickupCommentID, "error", err)
		return fmt.Errorf("failed to delete comment mapping: %w", err)
	}
	return nil
}
