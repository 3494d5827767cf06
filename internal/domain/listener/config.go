// Package listener holds the webhook-to-project binding model: stored
// configurations and the persistent correspondence between ClickUp
// task/comment identifiers and local ticket/comment records.
package listener

import "strings"

// Config binds an inbound ClickUp webhook to a local project. A config
// matches a request either by HMAC signature over its HookSecret or,
// when no signature matched, by the payload's declared webhook id.
type Config struct {
	ID         uint
	WebhookID  string
	HookSecret string
	ProjectID  uint
	TaskTag    string
}

// Validate checks the invariants the admin surface must uphold before
// a config is persisted.
func (c *Config) Validate() error {
	if c.ProjectID == 0 {
		return ErrProjectRequired
	}
	if strings.TrimSpace(c.WebhookID) == "" && strings.TrimSpace(c.HookSecret) == "" {
		return ErrIdentityRequired
	}
	return nil
}
