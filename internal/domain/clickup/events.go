package clickup

// EventKind classifies an inbound event name.
type EventKind int

const (
	// KindTask covers task create/update/status/name/description/
	// priority events. An empty event name also classifies as a task
	// mutation: early ClickUp payloads carried no event field.
	KindTask EventKind = iota
	// KindComment covers comment posted/updated/deleted in both
	// naming conventions ClickUp has used.
	KindComment
	// KindIgnored is everything else. Ignored events are acknowledged
	// with success so ClickUp does not retry them.
	KindIgnored
)

var taskEvents = map[string]bool{
	"taskcreated":            true,
	"taskupdated":            true,
	"taskstatusupdated":      true,
	"tasknameupdated":        true,
	"taskdescriptionupdated": true,
	"taskpriorityupdated":    true,
}

var commentEvents = map[string]bool{
	"taskcommentposted":  true,
	"taskcommentupdated": true,
	"taskcommentdeleted": true,
	"commentcreated":     true,
	"commentupdated":     true,
	"commentdeleted":     true,
}

var commentUpdateEvents = map[string]bool{
	"taskcommentupdated": true,
	"commentupdated":     true,
}

var commentDeleteEvents = map[string]bool{
	"taskcommentdeleted": true,
	"commentdeleted":     true,
}

// Classify maps a lowercased event name to its kind.
func Classify(event string) EventKind {
	switch {
	case event == "" || taskEvents[event]:
		return KindTask
	case commentEvents[event]:
		return KindComment
	default:
		return KindIgnored
	}
}

// IsCommentUpdate reports whether event edits an existing comment.
func IsCommentUpdate(event string) bool {
	return commentUpdateEvents[event]
}

// IsCommentDelete reports whether event deletes a comment.
func IsCommentDelete(event string) bool {
	return commentDeleteEvents[event]
}
