// Package clickup implements tolerant extraction over ClickUp webhook
// payloads. ClickUp has shipped several payload shapes over the years
// (top-level task object, nested alternate payload, history-item only
// deliveries), so every field is derived from an ordered list of
// candidate sources; the first non-empty candidate wins.
package clickup

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Payload is a decoded webhook body. All lookups are nil-safe: a nil
// Payload yields zero values.
type Payload map[string]any

// Decode parses a raw JSON body into a Payload. Non-object bodies are
// rejected.
func Decode(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	// json.Unmarshal accepts a literal null and leaves the map nil.
	if p == nil {
		return nil, errors.New("top-level value is not a JSON object")
	}
	return p, nil
}

// Map returns the nested object under key, or nil.
func (p Payload) Map(key string) Payload {
	if p == nil {
		return nil
	}
	if m, ok := p[key].(map[string]any); ok {
		return Payload(m)
	}
	return nil
}

// String returns the scalar value under key rendered as a string, or
// "" when absent or non-scalar. Numeric values render without a
// trailing fraction when integral, matching how ClickUp serializes
// ids and epochs.
func (p Payload) String(key string) string {
	if p == nil {
		return ""
	}
	return scalarString(p[key])
}

// Has reports whether the key exists at all, regardless of its value.
func (p Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p[key]
	return ok
}

// List returns the array under key, or nil.
func (p Payload) List(key string) []any {
	if p == nil {
		return nil
	}
	if l, ok := p[key].([]any); ok {
		return l
	}
	return nil
}

// Event returns the lowercased event name, "" when absent.
func (p Payload) Event() string {
	return strings.ToLower(p.String("event"))
}

// WebhookID returns the payload's declared webhook identifier.
func (p Payload) WebhookID() string {
	return p.String("webhook_id")
}

// taskShapeKeys mark an object as task-shaped for the alternate
// payload location.
var taskShapeKeys = []string{"name", "description", "text_content", "status_id"}

func isTaskShaped(p Payload) bool {
	for _, k := range taskShapeKeys {
		if p.Has(k) {
			return true
		}
	}
	return false
}

// TaskBody locates the task object: the top-level task, or the nested
// alternate payload when it is task-shaped. Returns nil when neither
// is present.
func (p Payload) TaskBody() Payload {
	if task := p.Map("task"); task != nil {
		return task
	}
	if alt := p.Map("payload"); alt != nil && isTaskShaped(alt) {
		return alt
	}
	return nil
}

// taskIDAltKeys is the candidate order inside the alternate payload.
var taskIDAltKeys = []string{"task_id", "taskId", "id"}

// ExtractTaskID derives the external task id: task-object id, then
// top-level task_id, then the alternate payload's task_id/taskId/id.
// The result is trimmed; "" means no id could be found.
func ExtractTaskID(p Payload) string {
	id := p.TaskBody().String("id")
	if id == "" {
		id = p.String("task_id")
	}
	if id == "" {
		if alt := p.Map("payload"); alt != nil && isTaskShaped(alt) {
			for _, key := range taskIDAltKeys {
				if id = alt.String(key); id != "" {
					break
				}
			}
		}
	}
	return strings.TrimSpace(id)
}

// HistoryItems collects the change-history entries, falling back to a
// history list nested inside the task body.
func (p Payload) HistoryItems() []Payload {
	items := p.List("history_items")
	if len(items) == 0 {
		items = p.TaskBody().List("history_items")
	}
	out := make([]Payload, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, Payload(m))
		}
	}
	return out
}

// parentKeys are the recognized spellings of a parent-task reference.
var parentKeys = []string{"parent", "parent_id", "parentId"}

// ExtractParent scans the task body, the top-level payload, and the
// alternate payload for a parent reference. The presence flag is set
// as soon as any parent key exists, even with a null or empty value:
// that distinguishes "clear the parent link" from "payload did not
// mention a parent".
func ExtractParent(p Payload) (id string, present bool) {
	sources := []Payload{p.TaskBody(), p}
	if alt := p.Map("payload"); alt != nil {
		sources = append(sources, alt)
	}

	for _, src := range sources {
		for _, key := range parentKeys {
			if !src.Has(key) {
				continue
			}
			present = true
			if nested := src.Map(key); nested != nil {
				id = nested.String("id")
			} else {
				id = src.String(key)
			}
			if id != "" {
				return strings.TrimSpace(id), true
			}
		}
	}
	return strings.TrimSpace(id), present
}

// ExtractHeadline derives the ticket headline: the task name, then a
// name/title history entry. Empty when the payload carries neither, so
// updates without a rename leave the stored headline alone.
func ExtractHeadline(p Payload, items []Payload) string {
	headline := strings.TrimSpace(p.TaskBody().String("name"))
	if headline == "" {
		headline = findHistoryValue(items, "name", "title")
	}
	return headline
}

// ExtractDescription derives the ticket description and appends a
// backlink to the ClickUp task when the payload carries a URL that the
// description does not already embed.
func ExtractDescription(p Payload, items []Payload) string {
	task := p.TaskBody()
	description := strings.TrimSpace(task.String("description"))
	if description == "" {
		description = strings.TrimSpace(task.String("text_content"))
	}
	if description == "" {
		description = findHistoryValue(items, "description", "text")
	}

	url := strings.TrimSpace(task.String("url"))
	if url == "" {
		url = strings.TrimSpace(task.String("link"))
	}
	if url != "" && !strings.Contains(description, url) {
		if description != "" {
			description += "\n\n"
		}
		description += "ClickUp: " + url
	}
	return description
}

// NormalizeLabel lowercases and strips everything but ASCII
// alphanumerics, so "In Progress", "in-progress" and "IN_PROGRESS"
// compare equal.
func NormalizeLabel(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
