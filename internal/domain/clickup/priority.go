package clickup

import (
	"strconv"
	"strings"
)

// PriorityKind distinguishes the three outcomes of priority
// extraction. A null priority in the payload is ambiguous between "no
// signal, leave the stored value alone" and "explicitly cleared", so
// extraction returns an explicit tri-state instead of a nullable
// level.
type PriorityKind int

const (
	// PriorityAbsent means no usable priority signal was found; the
	// update set must not touch the stored priority.
	PriorityAbsent PriorityKind = iota
	// PriorityLevel carries a concrete level 1 (highest) to 5.
	PriorityLevel
	// PriorityClear means the payload asked for the priority to be
	// removed ("none"/"n/a").
	PriorityClear
)

// Priority is the tri-state result of priority extraction.
type Priority struct {
	Kind  PriorityKind
	Level int
}

// priorityAliases maps upstream priority names to local levels. A zero
// level marks the clearing aliases.
var priorityAliases = map[string]int{
	"critical": 1,
	"urgent":   1,
	"blocker":  1,
	"highest":  1,
	"high":     2,
	"medium":   3,
	"normal":   3,
	"low":      4,
	"lowest":   5,
	"none":     0,
	"n/a":      0,
}

// ExtractPriority finds the first priority history entry with a
// recognizable value: a literal 1-5, or a name from the alias table.
// Unrecognized values are skipped so a later entry can still match.
func ExtractPriority(items []Payload) Priority {
	for _, item := range items {
		if historyField(item) != "priority" {
			continue
		}

		var candidate string
		switch after := item["after"].(type) {
		case map[string]any:
			nested := Payload(after)
			candidate = nested.String("priority")
			if candidate == "" {
				candidate = nested.String("id")
			}
		case string, float64:
			candidate = scalarString(after)
		}

		if p, ok := mapPriorityValue(candidate); ok {
			return p
		}
	}
	return Priority{Kind: PriorityAbsent}
}

func mapPriorityValue(value string) (Priority, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Priority{}, false
	}

	if n, err := strconv.Atoi(normalized); err == nil {
		if n >= 1 && n <= 5 {
			return Priority{Kind: PriorityLevel, Level: n}, true
		}
		return Priority{}, false
	}

	if level, ok := priorityAliases[normalized]; ok {
		if level == 0 {
			return Priority{Kind: PriorityClear}, true
		}
		return Priority{Kind: PriorityLevel, Level: level}, true
	}
	return Priority{}, false
}
