package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

type TaskMapModel struct {
	ID                  uint    `gorm:"primaryKey"`
	ConfigID            uint    `gorm:"not null;uniqueIndex:uk_config_task"`
	ClickupTaskID       string  `gorm:"size:64;not null;uniqueIndex:uk_config_task"`
	ParentClickupTaskID *string `gorm:"size:64;index"`
	TicketID            uint    `gorm:"not null;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (TaskMapModel) TableName() string {
	return constants.TableTaskMaps
}
