package usecases

import (
	"bytes"
	"context"
	"fmt"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// ProcessWebhookCommand carries one raw webhook delivery.
type ProcessWebhookCommand struct {
	Body      []byte
	Signature string
}

// ProcessWebhookResult acknowledges a processed delivery. Message is
// empty for the plain success case.
type ProcessWebhookResult struct {
	Message string
}

// ProcessWebhookUseCase is the entry point for webhook deliveries:
// authenticate, classify, then hand off to the matching reconciler.
type ProcessWebhookUseCase struct {
	repo     listener.Repository
	auth     *Authenticator
	tasks    *TaskReconciler
	comments *CommentReconciler
	logger   logger.Interface
}

func NewProcessWebhookUseCase(
	repo listener.Repository,
	auth *Authenticator,
	tasks *TaskReconciler,
	comments *CommentReconciler,
	logger logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		repo:     repo,
		auth:     auth,
		tasks:    tasks,
		comments: comments,
		logger:   logger,
	}
}

func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, cmd ProcessWebhookCommand) (*ProcessWebhookResult, error) {
	if len(bytes.TrimSpace(cmd.Body)) == 0 {
		return nil, errors.NewValidationError("Empty payload")
	}

	payload, err := clickup.Decode(cmd.Body)
	if err != nil {
		uc.logger.Warnw("webhook payload is not valid JSON", "error", err)
		return nil, errors.NewValidationError("Invalid JSON payload")
	}

	configs, err := uc.repo.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load configurations: %w", err)
	}

	cfg, err := uc.auth.Match(cmd.Body, cmd.Signature, payload, configs)
	if err != nil {
		return nil, err
	}

	event := payload.Event()
	kind := clickup.Classify(event)
	if kind == clickup.KindIgnored {
		uc.logger.Infow("ignoring webhook event", "event", event, "config_id", cfg.ID)
		return &ProcessWebhookResult{Message: "Event ignored"}, nil
	}

	taskID := clickup.ExtractTaskID(payload)
	if taskID == "" {
		uc.logger.Warnw("webhook payload carries no task id", "event", event)
		return nil, errors.NewValidationError("Missing task id")
	}

	if kind == clickup.KindComment {
		message, err := uc.comments.Execute(ctx, cfg, payload, taskID, event)
		if err != nil {
			return nil, err
		}
		return &ProcessWebhookResult{Message: message}, nil
	}

	if err := uc.tasks.Execute(ctx, cfg, payload, taskID); err != nil {
		return nil, err
	}
	return &ProcessWebhookResult{}, nil
}
