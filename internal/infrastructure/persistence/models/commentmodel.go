package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	ParentID  uint   `gorm:"not null;default:0"`
	UserID    uint   `gorm:"not null;default:0"`
	Text      string `gorm:"type:longtext;not null"`
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
