package clickup

import "strings"

// historyField reads the field name of a history entry; some payload
// generations use "type" instead of "field".
func historyField(item Payload) string {
	if f := item.String("field"); f != "" {
		return f
	}
	return item.String("type")
}

// findHistoryValue returns the first history entry's after/value for
// any of the given field names. Object values yield their name, or
// status, member.
func findHistoryValue(items []Payload, fields ...string) string {
	for _, item := range items {
		field := historyField(item)
		if field == "" || !contains(fields, field) {
			continue
		}
		after, ok := item["after"]
		if !ok || after == nil {
			after = item["value"]
		}
		switch v := after.(type) {
		case string:
			return strings.TrimSpace(v)
		case map[string]any:
			nested := Payload(v)
			if s := nested.String("name"); s != "" {
				return strings.TrimSpace(s)
			}
			if s := nested.String("status"); s != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// StatusChange is the raw status signal carried by a payload: the
// literal label when one was reported, plus the coarse status type
// used as a fallback bucket when the label does not resolve.
type StatusChange struct {
	Label string
	Type  string
}

// Empty reports whether the payload carried no status signal at all.
func (s StatusChange) Empty() bool {
	return s.Label == "" && s.Type == ""
}

// ExtractStatus pulls the status label and status type from the
// history entries.
func ExtractStatus(items []Payload) StatusChange {
	return StatusChange{
		Label: findHistoryValue(items, "status"),
		Type:  extractStatusType(items),
	}
}

// extractStatusType finds the coarse status classification: a nested
// data.status_type, or the after-state's type field. Entries for other
// fields are skipped, but entries with no field name are inspected
// since legacy payloads omitted it on status changes.
func extractStatusType(items []Payload) string {
	for _, item := range items {
		field := historyField(item)
		if field != "" && field != "status" {
			continue
		}
		if data := item.Map("data"); data != nil {
			if t := data.String("status_type"); t != "" {
				return strings.ToLower(t)
			}
		}
		if after := item.Map("after"); after != nil {
			if t := after.String("type"); t != "" {
				return strings.ToLower(t)
			}
		}
	}
	return ""
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
