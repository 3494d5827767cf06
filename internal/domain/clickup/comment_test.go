package clickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractComment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *Comment
	}{
		{
			name: "top level comment",
			raw:  `{"comment":{"id":"c1","comment_text":"hello"}}`,
			want: &Comment{ID: "c1", Text: "hello"},
		},
		{
			name: "nested alternate payload comment",
			raw:  `{"payload":{"comment":{"id":"c1","text":"hi"}}}`,
			want: &Comment{ID: "c1", Text: "hi"},
		},
		{
			name: "alternate payload itself comment shaped",
			raw:  `{"payload":{"id":"c1","comment_text":"inline"}}`,
			want: &Comment{ID: "c1", Text: "inline"},
		},
		{
			name: "data wrapper",
			raw:  `{"data":{"comment":{"id":"c1","comment":"wrapped"}}}`,
			want: &Comment{ID: "c1", Text: "wrapped"},
		},
		{
			name: "comment_id spelling",
			raw:  `{"comment":{"comment_id":"c2","comment_text":"x"}}`,
			want: &Comment{ID: "c2", Text: "x"},
		},
		{
			name: "rich text as last resort",
			raw:  `{"comment":{"id":"c1","comment_text_rich":"<p>rich</p>"}}`,
			want: &Comment{ID: "c1", Text: "<p>rich</p>"},
		},
		{
			name: "parent comment reference",
			raw:  `{"comment":{"id":"c2","comment_text":"reply","parent":"c1"}}`,
			want: &Comment{ID: "c2", Text: "reply", ParentID: "c1"},
		},
		{
			name: "no comment anywhere",
			raw:  `{"task_id":"t1"}`,
			want: nil,
		},
		{
			name: "object without comment shape rejected",
			raw:  `{"comment":{"id":"c1"}}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractComment(decode(t, tt.raw))

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Text, got.Text)
			assert.Equal(t, tt.want.ParentID, got.ParentID)
		})
	}
}

func TestExtractCommentParsesDate(t *testing.T) {
	p := decode(t, `{"comment":{"id":"c1","comment_text":"x","date":1714564800000}}`)

	got := ExtractComment(p)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), got.Date)
}

func TestCommentHistoryItems(t *testing.T) {
	p := decode(t, `{"history_items":[
		{"field": "comment", "comment": {"id": "c1", "comment_text": "first"}},
		{"field": "status", "after": "Done"},
		{"field": "comment", "comment": {"id": "c2", "comment_text": "second"}}
	]}`)

	comments := CommentHistoryItems(p.HistoryItems())

	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "c2", comments[1].ID)
	assert.Equal(t, "second", comments[1].Text)
}
