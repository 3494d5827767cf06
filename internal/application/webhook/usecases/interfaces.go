package usecases

import (
	"context"
	"time"
)

// TicketInfo is the slice of a ticket the reconciler needs to read back.
type TicketInfo struct {
	ID       uint
	Tags     string
	ParentID uint
}

// StatusLabel is one status lane configured for a project.
type StatusLabel struct {
	ID         uint
	Name       string
	StatusType string
}

// NewComment carries the fields needed to create a ticket comment.
type NewComment struct {
	TicketID uint
	ParentID uint
	Text     string
	Date     time.Time
}

// TicketStore abstracts ticket persistence for the reconciler.
type TicketStore interface {
	CreateTicket(ctx context.Context, fields map[string]any) (uint, error)
	PatchTicket(ctx context.Context, ticketID uint, fields map[string]any) error
	GetTicket(ctx context.Context, ticketID uint) (*TicketInfo, error)
	ResolveStatusID(ctx context.Context, label string, projectID uint) (uint, bool, error)
	ListStatusLabels(ctx context.Context, projectID uint) ([]StatusLabel, error)
}

// CommentStore abstracts comment persistence for the reconciler.
type CommentStore interface {
	CreateComment(ctx context.Context, comment NewComment) (uint, error)
	EditComment(ctx context.Context, commentID uint, text string) error
	DeleteComment(ctx context.Context, commentID uint) error
}

// SchemaProvider reports which columns exist on the tickets table so
// custom field updates only touch columns the deployment actually has.
type SchemaProvider interface {
	TicketColumns(ctx context.Context) (map[string]bool, error)
}
