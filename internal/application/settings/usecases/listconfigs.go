package usecases

import (
	"context"
	"fmt"

	"tasksync/internal/application/settings/dto"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/logger"
)

// ListConfigsUseCase returns all stored webhook configurations.
type ListConfigsUseCase struct {
	repo   listener.Repository
	logger logger.Interface
}

func NewListConfigsUseCase(repo listener.Repository, logger logger.Interface) *ListConfigsUseCase {
	return &ListConfigsUseCase{repo: repo, logger: logger}
}

func (uc *ListConfigsUseCase) Execute(ctx context.Context) ([]dto.ConfigResponse, error) {
	configs, err := uc.repo.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}

	responses := make([]dto.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, dto.ConfigResponse{
			ID:        cfg.ID,
			WebhookID: cfg.WebhookID,
			ProjectID: cfg.ProjectID,
			TaskTag:   cfg.TaskTag,
			HasSecret: cfg.HookSecret != "",
		})
	}
	return responses, nil
}
