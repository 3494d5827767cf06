package clickup

// TaskEvent is the normalized view of one task-mutation payload. It is
// transient: extraction is pure, and everything needing storage access
// (status resolution, mapping lookups) happens downstream.
type TaskEvent struct {
	TaskID        string
	Headline      string
	Description   string
	ParentTaskID  string
	ParentPresent bool
	Status        StatusChange
	Priority      Priority
	CustomFields  map[string]string
	// Comments are comment sub-events nested in the change history,
	// reconciled opportunistically alongside the task mutation.
	Comments []*Comment
}

// ExtractTask derives the full normalized task event from a payload.
// columns is the ticket table's column set, gating which custom-field
// updates are kept.
func ExtractTask(p Payload, columns map[string]bool) *TaskEvent {
	taskID := ExtractTaskID(p)
	items := p.HistoryItems()
	parentID, parentPresent := ExtractParent(p)

	return &TaskEvent{
		TaskID:        taskID,
		Headline:      ExtractHeadline(p, items),
		Description:   ExtractDescription(p, items),
		ParentTaskID:  parentID,
		ParentPresent: parentPresent,
		Status:        ExtractStatus(items),
		Priority:      ExtractPriority(items),
		CustomFields:  ExtractCustomFieldUpdates(items, columns),
		Comments:      CommentHistoryItems(items),
	}
}
