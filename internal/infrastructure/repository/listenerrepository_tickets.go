package repository

import (
	"context"
	"fmt"

	"tasksync/internal/domain/listener"
	"tasksync/internal/infrastructure/persistence/models"
)

// FindDuplicateTicketID looks for a ticket in the project with exactly
// the given headline whose tag list carries every required tag. Used
// to adopt manually created tickets instead of inserting duplicates.
// Tickets are hard-deleted in this schema, so no soft-delete filter
// applies here; every stored row is a live candidate.
func (r *ListenerRepository) FindDuplicateTicketID(ctx context.Context, projectID uint, headline string, tags []string) (uint, error) {
	type row struct {
		ID   uint
		Tags string
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("id", "tags").
		Where("project_id = ? AND headline = ?", projectID, headline).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to search duplicate tickets", "project_id", projectID, "error", err)
		return 0, fmt.Errorf("failed to search duplicate tickets: %w", err)
	}

next:
	for _, candidate := range rows {
		for _, tag := range tags {
			if !listener.ContainsTag(candidate.Tags, tag) {
				continue next
			}
		}
		return candidate.ID, nil
	}
	return 0, nil
}

// ListTicketColumns reports the live column set of the tickets table.
func (r *ListenerRepository) ListTicketColumns(ctx context.Context) (map[string]bool, error) {
	columnTypes, err := r.db.WithContext(ctx).Migrator().ColumnTypes(&models.TicketModel{})
	if err != nil {
		r.logger.Errorw("failed to list ticket columns", "error", err)
		return nil, fmt.Errorf("failed to list ticket columns: %w", err)
	}

	columns := make(map[string]bool, len(columnTypes))
	for _, column := range columnTypes {
		columns[column.Name()] = true
	}
	return columns, nil
}
