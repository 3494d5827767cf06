package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

type ConfigModel struct {
	ID uint `gorm:"primaryKey"`
	// NULL when the configuration is secret-only; unique otherwise.
	WebhookID  *string `gorm:"size:255;uniqueIndex:uk_webhook_id"`
	HookSecret string  `gorm:"size:255;not null;default:''"`
	ProjectID  uint    `gorm:"not null;index"`
	TaskTag    string  `gorm:"size:255;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ConfigModel) TableName() string {
	return constants.TableConfigs
}
