package usecases

import (
	"context"
	"fmt"

	"tasksync/internal/shared/logger"
)

// CheckProjectUseCase verifies a project id from the admin screen
// before the configuration pointing at it is saved.
type CheckProjectUseCase struct {
	projects ProjectChecker
	logger   logger.Interface
}

func NewCheckProjectUseCase(projects ProjectChecker, logger logger.Interface) *CheckProjectUseCase {
	return &CheckProjectUseCase{projects: projects, logger: logger}
}

func (uc *CheckProjectUseCase) Execute(ctx context.Context, projectID uint) (bool, error) {
	exists, err := uc.projects.ProjectExists(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("check project %d: %w", projectID, err)
	}
	return exists, nil
}
