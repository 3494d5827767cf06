package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tasksync/internal/domain/listener"
	"tasksync/internal/infrastructure/persistence/mappers"
	"tasksync/internal/infrastructure/persistence/models"
	"tasksync/internal/shared/logger"
)

// ListenerRepository implements listener.Repository on MySQL.
type ListenerRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ListenerMapper
}

func NewListenerRepository(db *gorm.DB, logger logger.Interface) listener.Repository {
	return &ListenerRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewListenerMapper(),
	}
}

func (r *ListenerRepository) ListConfigs(ctx context.Context) ([]listener.Config, error) {
	var modelList []*models.ConfigModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list configurations", "error", err)
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	configs := make([]listener.Config, 0, len(modelList))
	for _, model := range modelList {
		configs = append(configs, *r.mapper.ConfigToDomain(model))
	}
	return configs, nil
}

func (r *ListenerRepository) GetConfig(ctx context.Context, id uint) (*listener.Config, error) {
	var model models.ConfigModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get configuration", "config_id", id, "error", err)
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	return r.mapper.ConfigToDomain(&model), nil
}

// SaveConfig replaces any row with the same webhook id inside one
// transaction, then inserts the new row. The generated id is written
// back to cfg.
func (r *ListenerRepository) SaveConfig(ctx context.Context, cfg *listener.Config) error {
	model := r.mapper.ConfigToModel(cfg)
	model.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if model.WebhookID != nil {
			if err := tx.Where("webhook_id = ?", *model.WebhookID).
				Delete(&models.ConfigModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to save configuration", "webhook_id", cfg.WebhookID, "error", err)
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cfg.ID = model.ID
	return nil
}

func (r *ListenerRepository) UpdateConfigProjectAndTag(ctx context.Context, id uint, projectID uint, taskTag string) error {
	result := r.db.WithContext(ctx).Model(&models.ConfigModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"project_id": projectID,
			"task_tag":   taskTag,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update configuration", "config_id", id, "error", result.Error)
		return fmt.Errorf("failed to update configuration: %w", result.Error)
	}
	return nil
}

func (r *ListenerRepository) DeleteConfig(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.ConfigModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete configuration", "config_id", id, "error", err)
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	return nil
}
