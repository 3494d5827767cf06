package usecases

import (
	"context"
	"fmt"

	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// DeleteConfigUseCase removes a webhook configuration. Mappings the
// configuration created are left in place; tickets already synced
// stay untouched.
type DeleteConfigUseCase struct {
	repo   listener.Repository
	logger logger.Interface
}

func NewDeleteConfigUseCase(repo listener.Repository, logger logger.Interface) *DeleteConfigUseCase {
	return &DeleteConfigUseCase{repo: repo, logger: logger}
}

func (uc *DeleteConfigUseCase) Execute(ctx context.Context, id uint) error {
	cfg, err := uc.repo.GetConfig(ctx, id)
	if err != nil {
		return fmt.Errorf("load configuration %d: %w", id, err)
	}
	if cfg == nil {
		return errors.NewNotFoundError("Configuration not found")
	}

	if err := uc.repo.DeleteConfig(ctx, id); err != nil {
		return fmt.Errorf("delete configuration %d: %w", id, err)
	}

	uc.logger.Infow("webhook configuration deleted", "config_id", id)
	return nil
}
