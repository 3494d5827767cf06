package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

// TicketModel carries the core ticket columns plus the optional
// custom field columns webhook updates can target. Deployments may
// drop columns they do not use; writes are gated on the live schema.
type TicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	ProjectID         uint   `gorm:"not null;index"`
	Headline          string `gorm:"size:255;not null"`
	Description       string `gorm:"type:longtext"`
	Type              string `gorm:"size:50;not null;default:'task'"`
	Status            *uint
	Priority          *int
	Tags              string `gorm:"size:1024;not null;default:''"`
	UserID            uint   `gorm:"not null;default:0"`
	EditorID          uint   `gorm:"not null;default:0"`
	DependingTicketID uint   `gorm:"not null;default:0;index"`

	AcceptanceCriteria string `gorm:"type:text"`
	PlanHours          string `gorm:"size:64"`
	HourRemaining      string `gorm:"size:64"`
	Storypoints        string `gorm:"size:64"`
	Sprint             string `gorm:"size:128"`
	URL                string `gorm:"size:2048"`
	Component          string `gorm:"size:255"`
	Version            string `gorm:"size:128"`
	Os                 string `gorm:"size:128"`
	Browser            string `gorm:"size:128"`
	Resolution         string `gorm:"size:255"`
	Production         string `gorm:"size:8"`
	Staging            string `gorm:"size:8"`
	Date               string `gorm:"size:32"`
	DateToFinish       string `gorm:"size:32"`
	EditFrom           string `gorm:"size:32"`
	EditTo             string `gorm:"size:32"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
