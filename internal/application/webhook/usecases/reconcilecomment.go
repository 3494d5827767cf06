package usecases

import (
	"context"
	"fmt"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// CommentReconciler converges local ticket comments to ClickUp comment
// events. Deletes are idempotent; comments for tasks that were never
// synced are acknowledged without side effects so ClickUp stops
// retrying them.
type CommentReconciler struct {
	repo     listener.Repository
	comments CommentStore
	logger   logger.Interface
}

func NewCommentReconciler(repo listener.Repository, comments CommentStore, logger logger.Interface) *CommentReconciler {
	return &CommentReconciler{repo: repo, comments: comments, logger: logger}
}

// Execute processes one comment event. The returned message, when not
// empty, is surfaced in the acknowledgement body.
func (r *CommentReconciler) Execute(ctx context.Context, cfg *listener.Config, payload clickup.Payload, taskID, event string) (string, error) {
	taskMap, err := r.repo.GetTaskMap(ctx, cfg.ID, taskID)
	if err != nil {
		return "", fmt.Errorf("load task mapping: %w", err)
	}
	if taskMap == nil {
		r.logger.Warnw("comment event for unsynced task", "clickup_task_id", taskID)
		return "Task not synced", nil
	}

	comment := clickup.ExtractComment(payload)
	if comment == nil {
		return "", errors.NewValidationError("Missing comment data")
	}
	if comment.ID == "" {
		return "", errors.NewValidationError("Missing comment id")
	}

	commentMap, err := r.repo.GetCommentMap(ctx, cfg.ID, comment.ID)
	if err != nil {
		return "", fmt.Errorf("load comment mapping: %w", err)
	}

	if clickup.IsCommentDelete(event) {
		if commentMap != nil {
			if commentMap.CommentID > 0 {
				if err := r.comments.DeleteComment(ctx, commentMap.CommentID); err != nil {
					return "", fmt.Errorf("delete comment %d: %w", commentMap.CommentID, err)
				}
			}
			if err := r.repo.DeleteCommentMap(ctx, cfg.ID, comment.ID); err != nil {
				return "", fmt.Errorf("delete comment mapping: %w", err)
			}
		}
		return "", nil
	}

	if comment.Text == "" {
		return "", errors.NewValidationError("Empty comment text")
	}

	if commentMap != nil {
		if clickup.IsCommentUpdate(event) && commentMap.CommentID > 0 {
			if err := r.comments.EditComment(ctx, commentMap.CommentID, comment.Text); err != nil {
				return "", fmt.Errorf("edit comment %d: %w", commentMap.CommentID, err)
			}
		}
		return "", nil
	}

	var parentCommentID uint
	if comment.ParentID != "" {
		parentMap, err := r.repo.GetCommentMap(ctx, cfg.ID, comment.ParentID)
		if err != nil {
			return "", fmt.Errorf("load parent comment mapping: %w", err)
		}
		if parentMap != nil {
			parentCommentID = parentMap.CommentID
		}
	}

	commentID, err := r.comments.CreateComment(ctx, NewComment{
		TicketID: taskMap.TicketID,
		ParentID: parentCommentID,
		Text:     comment.Text,
		Date:     comment.Date,
	})
	if err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}
	if err := r.repo.UpsertCommentMap(ctx, cfg.ID, comment.ID, taskID, taskMap.TicketID, commentID); err != nil {
		return "", fmt.Errorf("save comment mapping: %w", err)
	}
	return "", nil
}
