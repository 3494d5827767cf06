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

// CommentRepository persists ticket comments.
type CommentRepository struct {
	db        *gorm.DB
	logger    logger.Interface
	sanitizer *bluemonday.Policy
}

func NewCommentRepository(db *gorm.DB, logger logger.Interface) *CommentRepository {
	return &CommentRepository{
		db:        db,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment usecases.NewComment) (uint, error) {
	model := &models.CommentModel{
		TicketID: comment.TicketID,
		ParentID: comment.ParentID,
		Text:     r.sanitizer.Sanitize(comment.Text),
		Date:     comment.Date,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment", "ticket_id", comment.TicketID, "error", err)
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}
	return model.ID, nil
}

func (r *CommentRepository) EditComment(ctx context.Context, commentID uint, text string) error {
	result := r.db.WithContext(ctx).Model(&models.CommentModel{}).
		Where("id = ?", commentID).
		Update("text", r.sanitizer.Sanitize(text))
	if result.Error != nil {
		r.logger.Errorw("failed to edit comment", "comment_id", commentID, "error", result.Error)
		return fmt.Errorf("failed to edit comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, commentID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).
		Delete(&models.CommentModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete comment", "comment_id", commentID, "error", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
