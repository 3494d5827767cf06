package models

import "tasksync/internal/shared/constants"

// StatusLabelModel is one status lane of a project board. StatusType
// buckets lanes into NEW, INPROGRESS or DONE.
type StatusLabelModel struct {
	ID         uint   `gorm:"primaryKey"`
	ProjectID  uint   `gorm:"not null;uniqueIndex:uk_project_label"`
	Name       string `gorm:"size:255;not null;uniqueIndex:uk_project_label"`
	StatusType string `gorm:"size:32;not null;default:'NEW'"`
	SortOrder  int    `gorm:"not null;default:0"`
}

func (StatusLabelModel) TableName() string {
	return constants.TableStatusLabels
}
