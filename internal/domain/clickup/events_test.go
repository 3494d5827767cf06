package clickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		event string
		want  EventKind
	}{
		{"taskcreated", KindTask},
		{"taskupdated", KindTask},
		{"taskstatusupdated", KindTask},
		{"tasknameupdated", KindTask},
		{"taskdescriptionupdated", KindTask},
		{"taskpriorityupdated", KindTask},
		{"", KindTask},
		{"taskcommentposted", KindComment},
		{"taskcommentupdated", KindComment},
		{"taskcommentdeleted", KindComment},
		{"commentcreated", KindComment},
		{"commentupdated", KindComment},
		{"commentdeleted", KindComment},
		{"listcreated", KindIgnored},
		{"spacedeleted", KindIgnored},
		{"taskdeleted", KindIgnored},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.event), "event %q", tt.event)
	}
}

func TestCommentEventPredicates(t *testing.T) {
	assert.True(t, IsCommentUpdate("taskcommentupdated"))
	assert.True(t, IsCommentUpdate("commentupdated"))
	assert.False(t, IsCommentUpdate("taskcommentposted"))

	assert.True(t, IsCommentDelete("taskcommentdeleted"))
	assert.True(t, IsCommentDelete("commentdeleted"))
	assert.False(t, IsCommentDelete("taskcommentupdated"))
}

func TestEventLowercasesName(t *testing.T) {
	p := decode(t, `{"event":"TaskStatusUpdated"}`)
	assert.Equal(t, "taskstatusupdated", p.Event())
	assert.Equal(t, KindTask, Classify(p.Event()))
}
