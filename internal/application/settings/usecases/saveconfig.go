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

// SaveConfigUseCase creates a webhook configuration. Saving with a
// webhook id that already exists replaces the old row, so re-pasting a
// ClickUp webhook into the admin screen never piles up duplicates.
type SaveConfigUseCase struct {
	repo     listener.Repository
	projects ProjectChecker
	logger   logger.Interface
}

func NewSaveConfigUseCase(repo listener.Repository, projects ProjectChecker, logger logger.Interface) *SaveConfigUseCase {
	return &SaveConfigUseCase{repo: repo, projects: projects, logger: logger}
}

func (uc *SaveConfigUseCase) Execute(ctx context.Context, req dto.SaveConfigRequest) (*dto.ConfigResponse, error) {
	cfg := listener.Config{
		WebhookID:  strings.TrimSpace(req.WebhookID),
		HookSecret: strings.TrimSpace(req.HookSecret),
		ProjectID:  req.ProjectID,
		TaskTag:    strings.TrimSpace(req.TaskTag),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.projects.ProjectExists(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("check project %d: %w", cfg.ProjectID, err)
	}
	if !exists {
		return nil, errors.NewValidationError("Project does not exist")
	}

	if err := uc.repo.SaveConfig(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("save configuration: %w", err)
	}

	uc.logger.Infow("webhook configuration saved",
		"config_id", cfg.ID, "webhook_id", cfg.WebhookID, "project_id", cfg.ProjectID)

	return &dto.ConfigResponse{
		ID:        cfg.ID,
		WebhookID: cfg.WebhookID,
		ProjectID: cfg.ProjectID,
		TaskTag:   cfg.TaskTag,
		HasSecret: cfg.HookSecret != "",
	}, nil
}
