package clickup

import "strings"

// customFieldColumns maps normalized upstream custom-field names to
// local ticket columns. Only fields with a translation here are ever
// applied, and only when the ticket table actually has the column.
var customFieldColumns = map[string]string{
	"acceptancecriteria": "acceptance_criteria",
	"priority":           "priority",
	"planhours":          "plan_hours",
	"hourremaining":      "hour_remaining",
	"storypoints":        "storypoints",
	"sprint":             "sprint",
	"tags":               "tags",
	"duedate":            "date_to_finish",
	"datetofinish":       "date_to_finish",
	"due":                "date_to_finish",
	"startdate":          "edit_from",
	"enddate":            "edit_to",
	"editfrom":           "edit_from",
	"editto":             "edit_to",
	"url":                "url",
	"component":          "component",
	"version":            "version",
	"os":                 "os",
	"browser":            "browser",
	"resolution":         "resolution",
	"production":         "production",
	"staging":            "staging",
	"type":               "type",
}

var dateColumns = map[string]bool{
	"date":           true,
	"date_to_finish": true,
	"edit_from":      true,
	"edit_to":        true,
}

var boolColumns = map[string]bool{
	"production": true,
	"staging":    true,
}

// ExtractCustomFieldUpdates walks the custom_field history entries and
// builds a column→value update map. columns is the set of columns the
// ticket table actually has; unknown targets are dropped. Date-typed
// columns get the canonical UTC layout, boolean-typed columns "1"/"0".
func ExtractCustomFieldUpdates(items []Payload, columns map[string]bool) map[string]string {
	if len(items) == 0 || len(columns) == 0 {
		return nil
	}

	updates := make(map[string]string)
	for _, item := range items {
		if historyField(item) != "custom_field" {
			continue
		}

		customField := item.Map("custom_field")
		name := customField.String("name")
		if name == "" {
			continue
		}

		column, ok := customFieldColumns[NormalizeLabel(name)]
		if !ok || !columns[column] {
			continue
		}

		value, ok := extractCustomFieldValue(item, customField)
		if !ok {
			continue
		}

		if dateColumns[column] {
			value = NormalizeDateValue(value)
		} else if boolColumns[column] {
			value = NormalizeBoolValue(value)
		}
		updates[column] = value
	}

	if len(updates) == 0 {
		return nil
	}
	return updates
}

// extractCustomFieldValue prefers the after-state over a generic
// value. An explicit null after-state means "cleared" and yields "";
// no value at all yields ok=false. Arrays become a comma-joined list
// of their stringified entries.
func extractCustomFieldValue(item, customField Payload) (string, bool) {
	raw, hasAfter := item["after"]
	if !hasAfter {
		raw = item["value"]
	}
	if raw == nil {
		if hasAfter {
			return "", true
		}
		return "", false
	}

	if list, ok := raw.([]any); ok {
		var values []string
		for _, entry := range list {
			if s := stringifyFieldValue(entry, customField); s != "" {
				values = append(values, s)
			}
		}
		return strings.Join(values, ", "), true
	}

	return stringifyFieldValue(raw, customField), true
}

func stringifyFieldValue(value any, customField Payload) string {
	if m, ok := value.(map[string]any); ok {
		nested := Payload(m)
		if s := nested.String("name"); s != "" {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(nested.String("value"))
	}

	s := strings.TrimSpace(scalarString(value))
	if s == "" {
		return ""
	}

	// Dropdown and label fields report an option id; resolve it to
	// the display value when the field carries its option list.
	switch customField.String("type") {
	case "drop_down", "labels":
		if resolved := resolveOptionValue(customField, s); resolved != "" {
			return resolved
		}
	}
	return s
}

func resolveOptionValue(customField Payload, optionID string) string {
	options := customField.Map("type_config").List("options")
	for _, opt := range options {
		m, ok := opt.(map[string]any)
		if !ok {
			continue
		}
		option := Payload(m)
		if option.String("id") != optionID {
			continue
		}
		if s := option.String("value"); s != "" {
			return strings.TrimSpace(s)
		}
		if s := option.String("name"); s != "" {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(option.String("id"))
	}
	return ""
}
