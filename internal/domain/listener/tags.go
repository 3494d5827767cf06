package listener

import "strings"

// SplitTags splits a comma separated tag string, trimming whitespace
// and dropping empty entries.
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// MergeTags unions two comma separated tag strings. The merge is
// case-sensitive, order-preserving, with exact duplicates removed.
func MergeTags(existing, incoming string) string {
	seen := make(map[string]bool)
	var merged []string
	for _, t := range append(SplitTags(existing), SplitTags(incoming)...) {
		if seen[t] {
			continue
		}
		seen[t] = true
		merged = append(merged, t)
	}
	return strings.Join(merged, ",")
}

// ContainsTag reports whether the comma separated tag string holds an
// exact match for tag.
func ContainsTag(tags, tag string) bool {
	for _, t := range SplitTags(tags) {
		if t == tag {
			return true
		}
	}
	return false
}
