package usecases

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/constants"
	"tasksync/internal/shared/errors"
	"tasksync/internal/shared/logger"
)

// Authenticator matches an incoming webhook request to a stored
// configuration and verifies its signature.
type Authenticator struct {
	logger logger.Interface
}

func NewAuthenticator(logger logger.Interface) *Authenticator {
	return &Authenticator{logger: logger}
}

// Match resolves the configuration a request belongs to. Signature
// matching runs first; the payload webhook id is a fallback for
// configurations saved without a secret. A configuration that does
// carry a secret always requires a valid signature, even when it was
// located by webhook id.
func (a *Authenticator) Match(body []byte, signature string, payload clickup.Payload, configs []listener.Config) (*listener.Config, error) {
	signature = strings.TrimSpace(signature)
	signature = strings.TrimPrefix(signature, constants.SignaturePrefix)

	var matched *listener.Config
	if signature != "" {
		for i := range configs {
			if configs[i].HookSecret == "" {
				continue
			}
			if signatureMatches(body, signature, configs[i].HookSecret) {
				matched = &configs[i]
				break
			}
		}
	}

	if matched == nil {
		if webhookID := payload.WebhookID(); webhookID != "" {
			for i := range configs {
				if configs[i].WebhookID == webhookID {
					matched = &configs[i]
					break
				}
			}
		}
	}

	if matched == nil {
		a.logger.Warnw("no matching webhook configuration", "webhook_id", payload.WebhookID())
		return nil, errors.NewNotFoundError("No matching webhook configuration found")
	}

	if matched.HookSecret != "" {
		if signature == "" {
			a.logger.Warnw("missing signature for secured configuration", "config_id", matched.ID)
			return nil, errors.NewForbiddenError("Missing signature")
		}
		if !signatureMatches(body, signature, matched.HookSecret) {
			a.logger.Warnw("signature mismatch", "config_id", matched.ID)
			return nil, errors.NewForbiddenError("Invalid signature")
		}
	}

	return matched, nil
}

// signatureMatches accepts either an HMAC-SHA256 hex digest of the body
// or, for older ClickUp setups, the raw shared secret itself.
func signatureMatches(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if hmac.Equal([]byte(expected), []byte(signature)) {
		return true
	}
	return hmac.Equal([]byte(secret), []byte(signature))
}
