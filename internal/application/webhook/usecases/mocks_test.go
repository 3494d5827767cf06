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
	GetTaskMapFunc                func(ctx context.Context, configID uint, clickupTaskID string) (*listener.TaskMap, error)
	ListTaskMapsByParentFunc      func(ctx context.Context, configID uint, parentClickupTaskID string) ([]listener.TaskMap, error)
	UpsertTaskMapFunc             func(ctx context.Context, configID uint, clickupTaskID string, ticketID uint, parentClickupTaskID *string) error
	UpdateTaskMapParentFunc       func(ctx context.Context, configID uint, clickupTaskID string, parentClickupTaskID *string) error
	GetCommentMapFunc             func(ctx context.Context, configID uint, clickupCommentID string) (*listener.CommentMap, error)
	UpsertCommentMapFunc          func(ctx context.Context, configID uint, clickupCommentID, clickupTaskID string, ticketID, commentID uint) error
	DeleteCommentMapFunc          func(ctx context.Context, configID uint, clickupCommentID string) error
	FindDuplicateTicketIDFunc     func(ctx context.Context, projectID uint, headline string, tags []string) (uint, error)
	ListTicketColumnsFunc         func(ctx context.Context) (map[string]bool, error)
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
	if m.GetTaskMapFunc != nil {
		return m.GetTaskMapFunc(ctx, configID, clickupTaskID)
	}
	return nil, nil
}

func (m *mockRepository) ListTaskMapsByParent(ctx context.Context, configID uint, parentClickupTaskID string) ([]listener.TaskMap, error) {
	if m.ListTaskMapsByParentFunc != nil {
		return m.ListTaskMapsByParentFunc(ctx, configID, parentClickupTaskID)
	}
	return nil, nil
}

func (m *mockRepository) UpsertTaskMap(ctx context.Context, configID uint, clickupTaskID string, ticketID uint, parentClickupTaskID *string) error {
	if m.UpsertTaskMapFunc != nil {
		return m.UpsertTaskMapFunc(ctx, configID, clickupTaskID, ticketID, parentClickupTaskID)
	}
	return nil
}

func (m *mockRepository) UpdateTaskMapParent(ctx context.Context, configID uint, clickupTaskID string, parentClickupTaskID *string) error {
	if m.UpdateTaskMapParentFunc != nil {
		return m.UpdateTaskMapParentFunc(ctx, configID, clickupTaskID, parentClickupTaskID)
	}
	return nil
}

func (m *mockRepository) GetCommentMap(ctx context.Context, configID uint, clickupCommentID string) (*listener.CommentMap, error) {
	if m.GetCommentMapFunc != nil {
		return m.GetCommentMapFunc(ctx, configID, clickupCommentID)
	}
	return nil, nil
}

func (m *mockRepository) UpsertCommentMap(ctx context.Context, configID uint, clickupCommentID, clickupTaskID string, ticketID, commentID uint) error {
	if m.UpsertCommentMapFunc != nil {
		return m.UpsertCommentMapFunc(ctx, configID, clickupCommentID, clickupTaskID, ticketID, commentID)
	}
	return nil
}

func (m *mockRepository) DeleteCommentMap(ctx context.Context, configID uint, clickupCommentID string) error {
	if m.DeleteCommentMapFunc != nil {
		return m.DeleteCommentMapFunc(ctx, configID, clickupCommentID)
	}
	return nil
}

func (m *mockRepository) FindDuplicateTicketID(ctx context.Context, projectID uint, headline string, tags []string) (uint, error) {
	if m.FindDuplicateTicketIDFunc != nil {
		return m.FindDuplicateTicketIDFunc(ctx, projectID, headline, tags)
	}
	return 0, nil
}

func (m *mockRepository) ListTicketColumns(ctx context.Context) (map[string]bool, error) {
	if m.ListTicketColumnsFunc != nil {
		return m.ListTicketColumnsFunc(ctx)
	}
	return nil, nil
}

type mockTicketStore struct {
	CreateTicketFunc     func(ctx context.Context, fields map[string]any) (uint, error)
	PatchTicketFunc      func(ctx context.Context, ticketID uint, fields map[string]any) error
	GetTicketFunc        func(ctx context.Context, ticketID uint) (*TicketInfo, error)
	ResolveStatusIDFunc  func(ctx context.Context, label string, projectID uint) (uint, bool, error)
	ListStatusLabelsFunc func(ctx context.Context, projectID uint) ([]StatusLabel, error)
}

func (m *mockTicketStore) CreateTicket(ctx context.Context, fields map[string]any) (uint, error) {
	if m.CreateTicketFunc != nil {
		return m.CreateTicketFunc(ctx, fields)
	}
	return 0, nil
}

func (m *mockTicketStore) PatchTicket(ctx context.Context, ticketID uint, fields map[string]any) error {
	if m.PatchTicketFunc != nil {
		return m.PatchTicketFunc(ctx, ticketID, fields)
	}
	return nil
}

func (m *mockTicketStore) GetTicket(ctx context.Context, ticketID uint) (*TicketInfo, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketStore) ResolveStatusID(ctx context.Context, label string, projectID uint) (uint, bool, error) {
	if m.ResolveStatusIDFunc != nil {
		return m.ResolveStatusIDFunc(ctx, label, projectID)
	}
	return 0, false, nil
}

func (m *mockTicketStore) ListStatusLabels(ctx context.Context, projectID uint) ([]StatusLabel, error) {
	if m.ListStatusLabelsFunc != nil {
		return m.ListStatusLabelsFunc(ctx, projectID)
	}
	return nil, nil
}

type mockCommentStore struct {
	CreateCommentFunc func(ctx context.Context, comment NewComment) (uint, error)
	EditCommentFunc   func(ctx context.Context, commentID uint, text string) error
	DeleteCommentFunc func(ctx context.Context, commentID uint) error
}

func (m *mockCommentStore) CreateComment(ctx context.Context, comment NewComment) (uint, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, comment)
	}
	return 0, nil
}

func (m *mockCommentStore) EditComment(ctx context.Context, commentID uint, text string) error {
	if m.EditCommentFunc != nil {
		return m.EditCommentFunc(ctx, commentID, text)
	}
	return nil
}

func (m *mockCommentStore) DeleteComment(ctx context.Context, commentID uint) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID)
	}
	return nil
}

type mockSchemaProvider struct {
	TicketColumnsFunc func(ctx context.Context) (map[string]bool, error)
}

func (m *mockSchemaProvider) TicketColumns(ctx context.Context) (map[string]bool, error) {
	if m.TicketColumnsFunc != nil {
		return m.TicketColumnsFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	WithFunc   func(args ...any) logger.Interface
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	if m.WithFunc != nil {
		return m.WithFunc(args...)
	}
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
