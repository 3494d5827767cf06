package dto

// SaveConfigRequest creates or replaces a webhook configuration.
type SaveConfigRequest struct {
	WebhookID  string `json:"webhook_id" validate:"max=255"`
	HookSecret string `json:"hook_secret" validate:"max=255"`
	ProjectID  uint   `json:"project_id" validate:"required,gt=0"`
	TaskTag    string `json:"task_tag" validate:"max=255"`
}

// UpdateConfigRequest changes the project binding and tag of an
// existing configuration.
type UpdateConfigRequest struct {
	ProjectID uint   `json:"project_id" validate:"required,gt=0"`
	TaskTag   string `json:"task_tag" validate:"max=255"`
}

// CheckProjectRequest verifies a project id before it is saved.
type CheckProjectRequest struct {
	ProjectID uint `json:"project_id" validate:"required,gt=0"`
}

// ConfigResponse is the admin view of a configuration. The shared
// secret itself is never echoed back.
type ConfigResponse struct {
	ID        uint   `json:"id"`
	WebhookID string `json:"webhook_id"`
	ProjectID uint   `json:"project_id"`
	TaskTag   string `json:"task_tag"`
	HasSecret bool   `json:"has_secret"`
}
