package usecases

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/errors"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func decodePayload(t *testing.T, body []byte) clickup.Payload {
	t.Helper()
	payload, err := clickup.Decode(body)
	require.NoError(t, err)
	return payload
}

func TestAuthenticatorMatch(t *testing.T) {
	body := []byte(`{"event":"taskUpdated","webhook_id":"wh-2","task_id":"abc"}`)

	configs := []listener.Config{
		{ID: 1, WebhookID: "wh-1", HookSecret: "first-secret", ProjectID: 10},
		{ID: 2, WebhookID: "wh-2", HookSecret: "", ProjectID: 20},
		{ID: 3, WebhookID: "wh-3", HookSecret: "third-secret", ProjectID: 30},
	}

	tests := []struct {
		name         string
		signature    string
		configs      []listener.Config
		wantConfigID uint
		wantErrType  errors.ErrorType
	}{
		{
			name:         "hmac signature selects the matching secret",
			signature:    signBody(body, "third-secret"),
			configs:      configs,
			wantConfigID: 3,
		},
		{
			name:         "sha256 prefix is stripped before matching",
			signature:    "sha256=" + signBody(body, "first-secret"),
			configs:      configs,
			wantConfigID: 1,
		},
		{
			name:         "raw shared secret is accepted as a legacy signature",
			signature:    "third-secret",
			configs:      configs,
			wantConfigID: 3,
		},
		{
			name:         "payload webhook id matches a secretless configuration",
			signature:    "",
			configs:      configs,
			wantConfigID: 2,
		},
		{
			name:        "unknown signature and webhook id",
			signature:   signBody(body, "not-a-configured-secret"),
			configs:     configs[:1],
			wantErrType: errors.ErrorTypeNotFound,
		},
		{
			name:        "no configurations at all",
			signature:   "",
			configs:     nil,
			wantErrType: errors.ErrorTypeNotFound,
		},
		{
			name:      "webhook id match on a secured configuration requires a signature",
			signature: "",
			configs: []listener.Config{
				{ID: 5, WebhookID: "wh-2", HookSecret: "guarded", ProjectID: 50},
			},
			wantErrType: errors.ErrorTypeForbidden,
		},
		{
			name:      "webhook id match on a secured configuration rejects a bad signature",
			signature: signBody(body, "some-other-secret"),
			configs: []listener.Config{
				{ID: 5, WebhookID: "wh-2", HookSecret: "guarded", ProjectID: 50},
			},
			wantErrType: errors.ErrorTypeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuthenticator(&mockLogger{})
			payload := decodePayload(t, body)

			matched, err := auth.Match(body, tt.signature, payload, tt.configs)

			if tt.wantErrType != "" {
				require.Error(t, err)
				assert.Nil(t, matched)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantErrType, appErr.Type)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, matched)
			assert.Equal(t, tt.wantConfigID, matched.ID)
		})
	}
}

func TestAuthenticatorMatchPrefersSignatureOverWebhookID(t *testing.T) {
	// The signature identifies config 1 even though the payload's
	// webhook id points at config 2.
	body := []byte(`{"event":"taskUpdated","webhook_id":"wh-2"}`)
	configs := []listener.Config{
		{ID: 1, WebhookID: "wh-1", HookSecret: "secret-one"},
		{ID: 2, WebhookID: "wh-2", HookSecret: ""},
	}

	auth := NewAuthenticator(&mockLogger{})
	matched, err := auth.Match(body, signBody(body, "secret-one"), decodePayload(t, body), configs)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, uint(1), matched.ID)
}

func TestAuthenticatorMatchSignatureBoundToExactBody(t *testing.T) {
	body := []byte(`{"event":"taskUpdated","webhook_id":"wh-9"}`)
	tampered := append([]byte{}, body...)
	tampered = append(tampered, ' ')
	configs := []listener.Config{
		{ID: 7, WebhookID: "wh-9", HookSecret: "secret"},
	}

	auth := NewAuthenticator(&mockLogger{})
	matched, err := auth.Match(tampered, signBody(body, "secret"), decodePayload(t, body), configs)

	require.Error(t, err)
	assert.Nil(t, matched)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}
