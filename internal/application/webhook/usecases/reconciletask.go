package usecases

import (
	"context"
	"fmt"
	"strings"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// TaskReconciler converges a local ticket to the task state carried by
// a ClickUp task event. Replays of the same event are no-ops.
type TaskReconciler struct {
	repo     listener.Repository
	tickets  TicketStore
	comments CommentStore
	schema   SchemaProvider
	statuses *StatusResolver
	logger   logger.Interface
}

func NewTaskReconciler(
	repo listener.Repository,
	tickets TicketStore,
	comments CommentStore,
	schema SchemaProvider,
	statuses *StatusResolver,
	logger logger.Interface,
) *TaskReconciler {
	return &TaskReconciler{
		repo:     repo,
		tickets:  tickets,
		comments: comments,
		schema:   schema,
		statuses: statuses,
		logger:   logger,
	}
}

func (r *TaskReconciler) Execute(ctx context.Context, cfg *listener.Config, payload clickup.Payload, taskID string) error {
	columns, err := r.schema.TicketColumns(ctx)
	if err != nil {
		r.logger.Warnw("ticket schema lookup failed, skipping custom fields", "error", err)
		columns = nil
	}

	event := clickup.ExtractTask(payload, columns)
	event.TaskID = taskID

	// Comments embedded in task history sync opportunistically, even
	// before the project check runs.
	if len(event.Comments) > 0 {
		r.reconcileHistoryComments(ctx, cfg, taskID, event.Comments)
	}

	if cfg.ProjectID == 0 {
		r.logger.Errorw("configuration missing project id", "config_id", cfg.ID)
		return errors.NewInternalError("Configuration missing project id")
	}

	statusID := r.statuses.Resolve(ctx, event.Status, cfg.ProjectID)
	tag := strings.TrimSpace(cfg.TaskTag)

	taskMap, err := r.repo.GetTaskMap(ctx, cfg.ID, taskID)
	if err != nil {
		return fmt.Errorf("load task mapping: %w", err)
	}

	// A payload that omits the parent field entirely keeps the stored
	// parent link; a payload that carries it empty clears the link.
	parentID := event.ParentTaskID
	if parentID == "" && !event.ParentPresent && taskMap != nil {
		parentID = taskMap.ParentClickupTaskID
	}
	var storedParent *string
	if event.ParentPresent && event.ParentTaskID != "" {
		storedParent = &event.ParentTaskID
	}

	var ticketID uint
	switch {
	case taskMap != nil:
		ticketID = taskMap.TicketID
		updates := r.buildTicketUpdates(ctx, ticketID, event, statusID, tag)
		if len(updates) > 0 && ticketID > 0 {
			if err := r.tickets.PatchTicket(ctx, ticketID, updates); err != nil {
				return fmt.Errorf("update ticket %d: %w", ticketID, err)
			}
		}
		if event.ParentPresent && ticketID > 0 {
			if err := r.repo.UpdateTaskMapParent(ctx, cfg.ID, taskID, storedParent); err != nil {
				return fmt.Errorf("update task mapping parent: %w", err)
			}
			if storedParent == nil {
				parentID = ""
			}
		}

	default:
		// No mapping yet. A ticket created manually with the same
		// headline and tag is adopted instead of duplicated.
		if event.Headline != "" && tag != "" {
			existingID, err := r.repo.FindDuplicateTicketID(ctx, cfg.ProjectID, event.Headline, listener.SplitTags(tag))
			if err != nil {
				return fmt.Errorf("duplicate lookup: %w", err)
			}
			if existingID > 0 {
				ticketID = existingID
				updates := r.buildTicketUpdates(ctx, ticketID, event, statusID, tag)
				if len(updates) > 0 {
					if err := r.tickets.PatchTicket(ctx, ticketID, updates); err != nil {
						return fmt.Errorf("update ticket %d: %w", ticketID, err)
					}
				}
				if err := r.repo.UpsertTaskMap(ctx, cfg.ID, taskID, ticketID, storedParent); err != nil {
					return fmt.Errorf("save task mapping: %w", err)
				}
				break
			}
		}

		ticketID, err = r.createTicket(ctx, cfg, event, statusID, tag)
		if err != nil {
			return err
		}
		if ticketID > 0 {
			if err := r.repo.UpsertTaskMap(ctx, cfg.ID, taskID, ticketID, storedParent); err != nil {
				return fmt.Errorf("save task mapping: %w", err)
			}
		}
	}

	if ticketID > 0 {
		r.syncParentLinks(ctx, cfg.ID, taskID, ticketID, parentID)
	}
	return nil
}

func (r *TaskReconciler) createTicket(ctx context.Context, cfg *listener.Config, event *clickup.TaskEvent, statusID *uint, tag string) (uint, error) {
	tags := ""
	if tag != "" {
		tags = listener.MergeTags("", tag)
	}
	headline := event.Headline
	if headline == "" {
		headline = "ClickUp Task " + event.TaskID
	}
	values := map[string]any{
		"headline":    headline,
		"description": event.Description,
		"project_id":  cfg.ProjectID,
		"tags":        tags,
		"type":        "task",
		"user_id":     0,
		"editor_id":   0,
	}
	if statusID != nil {
		values["status"] = *statusID
	}
	if event.Priority.Kind == clickup.PriorityLevel {
		values["priority"] = event.Priority.Level
	}
	for column, value := range event.CustomFields {
		if _, exists := values[column]; !exists {
			values[column] = value
		}
	}

	ticketID, err := r.tickets.CreateTicket(ctx, values)
	if err != nil {
		return 0, fmt.Errorf("create ticket: %w", err)
	}
	r.logger.Infow("ticket created from webhook",
		"config_id", cfg.ID, "project_id", cfg.ProjectID, "ticket_id", ticketID)
	return ticketID, nil
}

// buildTicketUpdates assembles the sparse column set to patch. Absent
// payload facets never overwrite existing ticket values.
func (r *TaskReconciler) buildTicketUpdates(ctx context.Context, ticketID uint, event *clickup.TaskEvent, statusID *uint, tag string) map[string]any {
	updates := map[string]any{}
	if event.Headline != "" {
		updates["headline"] = event.Headline
	}
	if event.Description != "" {
		updates["description"] = event.Description
	}
	if statusID != nil {
		updates["status"] = *statusID
	}
	switch event.Priority.Kind {
	case clickup.PriorityLevel:
		updates["priority"] = event.Priority.Level
	case clickup.PriorityClear:
		updates["priority"] = nil
	}
	for column, value := range event.CustomFields {
		if _, exists := updates[column]; !exists {
			updates[column] = value
		}
	}
	if tag != "" && ticketID > 0 {
		ticket, err := r.tickets.GetTicket(ctx, ticketID)
		if err != nil {
			r.logger.Warnw("ticket lookup failed during tag merge", "ticket_id", ticketID, "error", err)
		} else if ticket != nil {
			merged := listener.MergeTags(ticket.Tags, tag)
			if merged != ticket.Tags {
				updates["tags"] = merged
			}
		}
	}
	return updates
}

// syncParentLinks converges the dependency links in both directions:
// this ticket onto its parent's ticket, and every known child mapping
// onto this ticket. Either side may have arrived first.
func (r *TaskReconciler) syncParentLinks(ctx context.Context, configID uint, taskID string, ticketID uint, parentClickupID string) {
	if parentClickupID != "" {
		parentMap, err := r.repo.GetTaskMap(ctx, configID, parentClickupID)
		if err != nil {
			r.logger.Warnw("parent mapping lookup failed", "parent_clickup_task_id", parentClickupID, "error", err)
		} else if parentMap != nil {
			r.updateTicketParent(ctx, ticketID, parentMap.TicketID)
		}
	}

	children, err := r.repo.ListTaskMapsByParent(ctx, configID, taskID)
	if err != nil {
		r.logger.Warnw("child mapping lookup failed", "clickup_task_id", taskID, "error", err)
		return
	}
	for _, child := range children {
		r.updateTicketParent(ctx, child.TicketID, ticketID)
	}
}

func (r *TaskReconciler) updateTicketParent(ctx context.Context, ticketID, parentTicketID uint) {
	if ticketID == 0 || parentTicketID == 0 || ticketID == parentTicketID {
		return
	}
	ticket, err := r.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		r.logger.Warnw("ticket lookup failed during parent link", "ticket_id", ticketID, "error", err)
		return
	}
	if ticket == nil || ticket.ParentID == parentTicketID {
		return
	}
	if err := r.tickets.PatchTicket(ctx, ticketID, map[string]any{"depending_ticket_id": parentTicketID}); err != nil {
		r.logger.Warnw("parent link update failed", "ticket_id", ticketID, "error", err)
	}
}

// reconcileHistoryComments upserts comments that arrive embedded in
// task history items. They only apply to tasks already mapped locally;
// failures here never fail the surrounding task event.
func (r *TaskReconciler) reconcileHistoryComments(ctx context.Context, cfg *listener.Config, taskID string, comments []*clickup.Comment) {
	taskMap, err := r.repo.GetTaskMap(ctx, cfg.ID, taskID)
	if err != nil {
		r.logger.Warnw("task mapping lookup failed for history comments", "clickup_task_id", taskID, "error", err)
		return
	}
	if taskMap == nil || taskMap.TicketID == 0 {
		return
	}

	for _, comment := range comments {
		if comment.ID == "" || comment.Text == "" {
			continue
		}
		existing, err := r.repo.GetCommentMap(ctx, cfg.ID, comment.ID)
		if err != nil {
			r.logger.Warnw("comment mapping lookup failed", "clickup_comment_id", comment.ID, "error", err)
			continue
		}
		if existing != nil {
			if existing.CommentID > 0 {
				if err := r.comments.EditComment(ctx, existing.CommentID, comment.Text); err != nil {
					r.logger.Warnw("comment update failed", "comment_id", existing.CommentID, "error", err)
				}
			}
			continue
		}
		commentID, err := r.comments.CreateComment(ctx, NewComment{
			TicketID: taskMap.TicketID,
			Text:     comment.Text,
			Date:     comment.Date,
		})
		if err != nil {
			r.logger.Warnw("comment create failed", "clickup_comment_id", comment.ID, "error", err)
			continue
		}
		if err := r.repo.UpsertCommentMap(ctx, cfg.ID, comment.ID, taskID, taskMap.TicketID, commentID); err != nil {
			r.logger.Warnw("comment mapping save failed", "clickup_comment_id", comment.ID, "error", err)
		}
	}
}
