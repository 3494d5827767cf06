package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

type CommentMapModel struct {
	ID               uint   `gorm:"primaryKey"`
	ConfigID         uint   `gorm:"not null;uniqueIndex:uk_config_comment"`
	ClickupCommentID string `gorm:"size:64;not null;uniqueIndex:uk_config_comment"`
	ClickupTaskID    string `gorm:"size:64;not null;index"`
	TicketID         uint   `gorm:"not null;index"`
	CommentID        uint   `gorm:"not null"`
	CreatedAt        time.Time
}

func (CommentMapModel) TableName() string {
	return constants.TableCommentMaps
}
