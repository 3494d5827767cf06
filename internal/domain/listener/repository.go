package listener

import "context"

// Repository is the mapping store consumed by the reconciliation
// engine. Upserts must be atomic on the unique key: two concurrent
// deliveries for the same task may both take the "unmapped" path, and
// the second insert has to degrade into an update instead of failing.
type Repository interface {
	ListConfigs(ctx context.Context) ([]Config, error)
	GetConfig(ctx context.Context, id uint) (*Config, error)
	// SaveConfig inserts a configuration, replacing any existing row
	// with the same webhook id. The generated id is written back.
	SaveConfig(ctx context.Context, cfg *Config) error
	UpdateConfigProjectAndTag(ctx context.Context, id uint, projectID uint, taskTag string) error
	DeleteConfig(ctx context.Context, id uint) error

	// GetTaskMap returns nil (no error) when no mapping exists.
	GetTaskMap(ctx context.Context, configID uint, clickupTaskID string) (*TaskMap, error)
	ListTaskMapsByParent(ctx context.Context, configID uint, parentClickupTaskID string) ([]TaskMap, error)
	// UpsertTaskMap inserts or updates on (config_id, clickup_task_id).
	// A nil parent leaves any stored parent link untouched on update.
	UpsertTaskMap(ctx context.Context, configID uint, clickupTaskID string, ticketID uint, parentClickupTaskID *string) error
	// UpdateTaskMapParent sets or clears (nil) the stored parent link.
	UpdateTaskMapParent(ctx context.Context, configID uint, clickupTaskID string, parentClickupTaskID *string) error

	// GetCommentMap returns nil (no error) when no mapping exists.
	GetCommentMap(ctx context.Context, configID uint, clickupCommentID string) (*CommentMap, error)
	UpsertCommentMap(ctx context.Context, configID uint, clickupCommentID, clickupTaskID string, ticketID, commentID uint) error
	// DeleteCommentMap is a no-op when the mapping does not exist.
	DeleteCommentMap(ctx context.Context, configID uint, clickupCommentID string) error

	// FindDuplicateTicketID looks for a non-deleted ticket in the
	// project with exactly the given headline carrying every tag.
	// Returns 0 when no candidate exists.
	FindDuplicateTicketID(ctx context.Context, projectID uint, headline string, tags []string) (uint, error)
	// ListTicketColumns returns the set of columns the ticket table
	// actually has, keyed by column name.
	ListTicketColumns(ctx context.Context) (map[string]bool, error)
}
