package migration

import (
	"tasksync/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ConfigModel{},
		&models.TaskMapModel{},
		&models.CommentMapModel{},
		&models.ProjectModel{},
		&models.StatusLabelModel{},
		&models.TicketModel{},
		&models.CommentModel{},
	}
}
