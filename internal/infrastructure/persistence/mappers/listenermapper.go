package mappers

import (
	"tasksync/internal/domain/listener"
	"tasksync/internal/infrastructure/persistence/models"
)

// ListenerMapper converts between the listener domain types and their
// persistence models.
type ListenerMapper interface {
	ConfigToDomain(model *models.ConfigModel) *listener.Config
	ConfigToModel(domain *listener.Config) *models.ConfigModel
	TaskMapToDomain(model *models.TaskMapModel) *listener.TaskMap
	CommentMapToDomain(model *models.CommentMapModel) *listener.CommentMap
}

type ListenerMapperImpl struct{}

func NewListenerMapper() ListenerMapper {
	return &ListenerMapperImpl{}
}

func (m *ListenerMapperImpl) ConfigToDomain(model *models.ConfigModel) *listener.Config {
	if model == nil {
		return nil
	}
	webhookID := ""
	if model.WebhookID != nil {
		webhookID = *model.WebhookID
	}
	return &listener.Config{
		ID:         model.ID,
		WebhookID:  webhookID,
		HookSecret: model.HookSecret,
		ProjectID:  model.ProjectID,
		TaskTag:    model.TaskTag,
	}
}

func (m *ListenerMapperImpl) ConfigToModel(domain *listener.Config) *models.ConfigModel {
	if domain == nil {
		return nil
	}
	var webhookID *string
	if domain.WebhookID != "" {
		id := domain.WebhookID
		webhookID = &id
	}
	return &models.ConfigModel{
		ID:         domain.ID,
		WebhookID:  webhookID,
		HookSecret: domain.HookSecret,
		ProjectID:  domain.ProjectID,
		TaskTag:    domain.TaskTag,
	}
}

func (m *ListenerMapperImpl) TaskMapToDomain(model *models.TaskMapModel) *listener.TaskMap {
	if model == nil {
		return nil
	}
	parentID := ""
	if model.ParentClickupTaskID != nil {
		parentID = *model.ParentClickupTaskID
	}
	return &listener.TaskMap{
		ID:                  model.ID,
		ConfigID:            model.ConfigID,
		ClickupTaskID:       model.ClickupTaskID,
		ParentClickupTaskID: parentID,
		TicketID:            model.TicketID,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func (m *ListenerMapperImpl) CommentMapToDomain(model *models.CommentMapModel) *listener.CommentMap {
	if model == nil {
		return nil
	}
	return &listener.CommentMap{
		ID:               model.ID,
		ConfigID:         model.ConfigID,
		ClickupCommentID: model.ClickupCommentID,
		ClickupTaskID:    model.ClickupTaskID,
		TicketID:         model.TicketID,
		CommentID:        model.CommentID,
		CreatedAt:        model.CreatedAt,
	}
}
