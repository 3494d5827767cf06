package usecases

import (
	"context"

	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/logger"
)

type mockRepository struct {
	ListConfigsFunc               func(ctx context.Context) ([]listener.Config, error)
	GetConfigFunc                 func(ctx context.Context, id uint) (*listener.Config, error)
	SaveConfigFunc                func(ctx context.Context, cfg *listener.Config) error
	UpdateConfigProjectAndTagFunc func(ctx context.Context, id uint, projectID uint, taskTag string) error
	DeleteConfigFunc              func(ctx context.Context, id uint) error
}

func (m *mockRepository) ListConfigs(ctx context.Context) ([]listener.Config, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetConfig(ctx context.Context, id uint) (*listener.Config, error) {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) SaveConfig(ctx context.Context, cfg *listener.Config) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, cfg)
	}
	return nil
}

func (m *mockRepository) UpdateConfigProjectAndTag(ctx context.Context, id uint, projectID uint, taskTag string) error {
	if m.UpdateConfigProjectAndTagFunc != nil {
		return m.UpdateConfigProjectAndTagFunc(ctx, id, projectID, taskTag)
	}
	return nil
}

func (m *mockRepository) DeleteConfig(ctx context.Context, id uint) error {
	if m.DeleteConfigFunc != nil {
		return m.DeleteConfigFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) GetTaskMap(ctx context.Context, configID uint, clickupTaskID string) (*listener.TaskMap, error) {
	return nil, nil
}

func (m *mockRepository) ListTaskMapsByParent(ctx context.Context, configID uint, parentClickupTaskID string) ([]listener.TaskMap, error) {
	return nil, nil
}

func (m *mockRepository) UpsertTaskMap(ctx context.Context, configID uint, clickupTaskID string, ticketID uint, parentClickupTaskID *string) error {
	return nil
}

func (m *mockRepository) UpdateTaskMapParent(ctx context.Context, configID uint, clickupTaskID string, parentClickupTaskID *string) error {
	return nil
}

func (m *mockRepository) GetCommentMap(ctx context.Context, configID uint, clickupCommentID string) (*listener.CommentMap, error) {
	return nil, nil
}

func (m *mockRepository) UpsertCommentMap(ctx context.Context, configID uint, clickupCommentID, clickupTaskID string, ticketID, commentID uint) error {
	return nil
}

func (m *mockRepository) DeleteCommentMap(ctx context.Context, configID uint, clickupCommentID string) error {
	return nil
}

func (m *mockRepository) FindDuplicateTicketID(ctx context.Context, projectID uint, headline string, tags []string) (uint, error) {
	return 0, nil
}

func (m *mockRepository) ListTicketColumns(ctx context.Context) (map[string]bool, error) {
	return nil, nil
}

type mockProjectChecker struct {
	ProjectExistsFunc func(ctx context.Context, projectID uint) (bool, error)
}

func (m *mockProjectChecker) ProjectExists(ctx context.Context, projectID uint) (bool, error) {
	if m.ProjectExistsFunc != nil {
		return m.ProjectExistsFunc(ctx, projectID)
	}
	return true, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
