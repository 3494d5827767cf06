package models

import (
	"time"

	"tasksync/internal/shared/constants"
)

type ProjectModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	State     string `gorm:"size:50;not null;default:'open'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
