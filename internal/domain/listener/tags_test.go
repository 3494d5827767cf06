package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
		{"", []string{}},
		{" , ", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitTags(tt.in), "input %q", tt.in)
	}
}

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{name: "union keeps order", existing: "bug,frontend", incoming: "clickup", want: "bug,frontend,clickup"},
		{name: "duplicates dropped", existing: "bug,clickup", incoming: "clickup", want: "bug,clickup"},
		{name: "merge is case sensitive", existing: "Bug", incoming: "bug", want: "Bug,bug"},
		{name: "empty existing", existing: "", incoming: "clickup", want: "clickup"},
		{name: "both empty", existing: "", incoming: "", want: ""},
		{name: "whitespace trimmed", existing: " a , b ", incoming: " b , c ", want: "a,b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeTags(tt.existing, tt.incoming))
		})
	}
}

func TestContainsTag(t *testing.T) {
	assert.True(t, ContainsTag("bug,clickup", "clickup"))
	assert.True(t, ContainsTag(" bug , clickup ", "clickup"))
	assert.False(t, ContainsTag("bug,clickup", "click"))
	assert.False(t, ContainsTag("", "clickup"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid with webhook id", cfg: Config{WebhookID: "wh-1", ProjectID: 3}},
		{name: "valid with secret only", cfg: Config{HookSecret: "s3cret", ProjectID: 3}},
		{name: "missing project", cfg: Config{WebhookID: "wh-1"}, wantErr: ErrProjectRequired},
		{name: "missing identity", cfg: Config{ProjectID: 3}, wantErr: ErrIdentityRequired},
		{name: "blank identity", cfg: Config{WebhookID: "  ", HookSecret: " ", ProjectID: 3}, wantErr: ErrIdentityRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
