package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/application/settings/dto"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
)

func TestSaveConfigCreatesConfiguration(t *testing.T) {
	repo := &mockRepository{
		SaveConfigFunc: func(ctx context.Context, cfg *listener.Config) error {
			cfg.ID = 11
			return nil
		},
	}
	uc := NewSaveConfigUseCase(repo, &mockProjectChecker{}, &mockLogger{})

	resp, err := uc.Execute(context.Background(), dto.SaveConfigRequest{
		WebhookID:  "  wh-1  ",
		HookSecret: " s3cret ",
		ProjectID:  7,
		TaskTag:    " clickup ",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, "wh-1", resp.WebhookID)
	assert.Equal(t, uint(7), resp.ProjectID)
	assert.Equal(t, "clickup", resp.TaskTag)
	assert.True(t, resp.HasSecret)
}

func TestSaveConfigRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SaveConfigRequest
	}{
		{name: "missing project", req: dto.SaveConfigRequest{WebhookID: "wh-1"}},
		{name: "missing identity", req: dto.SaveConfigRequest{ProjectID: 7}},
		{name: "blank identity", req: dto.SaveConfigRequest{WebhookID: "  ", HookSecret: " ", ProjectID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSaveConfigUseCase(&mockRepository{}, &mockProjectChecker{}, &mockLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
		})
	}
}

func TestSaveConfigRejectsUnknownProject(t *testing.T) {
	projects := &mockProjectChecker{
		ProjectExistsFunc: func(ctx context.Context, projectID uint) (bool, error) {
			return false, nil
		},
	}
	uc := NewSaveConfigUseCase(&mockRepository{}, projects, &mockLogger{})

	resp, err := uc.Execute(context.Background(), dto.SaveConfigRequest{WebhookID: "wh-1", ProjectID: 99})

	require.Error(t, err)
	assert.Nil(t, resp)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Project does not exist", appErr.Message)
}

func TestUpdateConfigRebindsProject(t *testing.T) {
	var updatedProject uint
	var updatedTag string
	repo := &mockRepository{
		GetConfigFunc: func(ctx context.Context, id uint) (*listener.Config, error) {
			return &listener.Config{ID: id, WebhookID: "wh-1", ProjectID: 7}, nil
		},
		UpdateConfigProjectAndTagFunc: func(ctx context.Context, id uint, projectID uint, taskTag string) error {
			updatedProject = projectID
			updatedTag = taskTag
			return nil
		},
	}
	uc := NewUpdateConfigUseCase(repo, &mockProjectChecker{}, &mockLogger{})

	err := uc.Execute(context.Background(), 11, dto.UpdateConfigRequest{ProjectID: 8, TaskTag: " sync "})

	require.NoError(t, err)
	assert.Equal(t, uint(8), updatedProject)
	assert.Equal(t, "sync", updatedTag)
}

func TestUpdateConfigNotFound(t *testing.T) {
	uc := NewUpdateConfigUseCase(&mockRepository{}, &mockProjectChecker{}, &mockLogger{})

	err := uc.Execute(context.Background(), 11, dto.UpdateConfigRequest{ProjectID: 8})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestDeleteConfig(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		GetConfigFunc: func(ctx context.Context, id uint) (*listener.Config, error) {
			return &listener.Config{ID: id, WebhookID: "wh-1", ProjectID: 7}, nil
		},
		DeleteConfigFunc: func(ctx context.Context, id uint) error {
			deleted = true
			assert.Equal(t, uint(11), id)
			return nil
		},
	}
	uc := NewDeleteConfigUseCase(repo, &mockLogger{})

	err := uc.Execute(context.Background(), 11)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteConfigNotFound(t *testing.T) {
	uc := NewDeleteConfigUseCase(&mockRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), 11)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestListConfigsHidesSecrets(t *testing.T) {
	repo := &mockRepository{
		ListConfigsFunc: func(ctx context.Context) ([]listener.Config, error) {
			return []listener.Config{
				{ID: 1, WebhookID: "wh-1", HookSecret: "secret", ProjectID: 7, TaskTag: "clickup"},
				{ID: 2, WebhookID: "wh-2", ProjectID: 8},
			}, nil
		},
	}
	uc := NewListConfigsUseCase(repo, &mockLogger{})

	responses, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.True(t, responses[0].HasSecret)
	assert.False(t, responses[1].HasSecret)
}
