package usecases

import (
	"context"
	"fmt"
	"strings"

	"tasksync/internal/application/settings/dto"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// UpdateConfigUseCase rebinds an existing configuration to a project
// and task tag. Webhook identity fields are immutable here; replacing
// them goes through save.
type UpdateConfigUseCase struct {
	repo     listener.Repository
	projects ProjectChecker
	logger   logger.Interface
}

func NewUpdateConfigUseCase(repo listener.Repository, projects ProjectChecker, logger logger.Interface) *UpdateConfigUseCase {
	return &UpdateConfigUseCase{repo: repo, projects: projects, logger: logger}
}

func (uc *UpdateConfigUseCase) Execute(ctx context.Context, id uint, req dto.UpdateConfigRequest) error {
	exists, err := uc.projects.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return fmt.Errorf("check project %d: %w", req.ProjectID, err)
	}
	if !exists {
		return errors.NewValidationError("Project does not exist")
	}

	cfg, err := uc.repo.GetConfig(ctx, id)
	if err != nil {
		return fmt.Errorf("load configuration %d: %w", id, err)
	}
	if cfg == nil {
		return errors.NewNotFoundError("Configuration not found")
	}

	if err := uc.repo.UpdateConfigProjectAndTag(ctx, id, req.ProjectID, strings.TrimSpace(req.TaskTag)); err != nil {
		return fmt.Errorf("update configuration %d: %w", id, err)
	}

	uc.logger.Infow("webhook configuration updated",
		"config_id", id, "project_id", req.ProjectID)
	return nil
}
