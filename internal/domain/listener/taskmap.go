package listener

import (
	"errors"
	"time"
)

var (
	ErrProjectRequired  = errors.New("project id is required")
	ErrIdentityRequired = errors.New("webhook id or hook secret is required")
)

// TaskMap records that a ClickUp task has been reconciled into a local
// ticket. (ConfigID, ClickupTaskID) is unique; the row is created on
// first reconciliation and updated on every subsequent webhook for the
// same task. ParentClickupTaskID is empty when no parent link is known.
type TaskMap struct {
	ID                  uint
	ConfigID            uint
	ClickupTaskID       string
	ParentClickupTaskID string
	TicketID            uint
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CommentMap records that a ClickUp comment has been reconciled into a
// local comment. (ConfigID, ClickupCommentID) is unique; the local
// comment id is fixed once created, and the row is removed when the
// upstream comment is deleted.
type CommentMap struct {
	ID               uint
	ConfigID         uint
	ClickupCommentID string
	ClickupTaskID    string
	TicketID         uint
	CommentID        uint
	CreatedAt        time.Time
}
