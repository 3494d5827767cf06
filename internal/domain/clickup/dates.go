package clickup

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// TimeLayout is the canonical stored representation for date-typed
// ticket columns, always UTC.
const TimeLayout = "2006-01-02 15:04:05"

// millisThreshold separates second-scale from millisecond-scale
// epochs: anything above it cannot be a plausible second count.
const millisThreshold = 9999999999

// epochToTime interprets a numeric value as a Unix epoch, detecting
// millisecond scale by magnitude.
func epochToTime(epoch int64) time.Time {
	if epoch > millisThreshold {
		epoch = int64(math.Floor(float64(epoch) / 1000))
	}
	return time.Unix(epoch, 0).UTC()
}

// NormalizeDateValue converts an upstream date value (numeric epoch or
// free-text date) to the canonical UTC layout. Unparsable values pass
// through unchanged so the raw text is at least preserved.
func NormalizeDateValue(value string) string {
	if value == "" {
		return ""
	}
	if epoch, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
		return epochToTime(epoch).Format(TimeLayout)
	}
	if t, err := dateparse.ParseAny(value); err == nil {
		return t.UTC().Format(TimeLayout)
	}
	return value
}

// NormalizeBoolValue maps textual truthy/falsy variants to "1"/"0".
// Anything unrecognized passes through unchanged.
func NormalizeBoolValue(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		return "1"
	case "false", "no", "0":
		return "0"
	}
	return value
}

// NormalizeTimestamp converts an upstream timestamp value (numeric
// epoch, with millisecond detection, or free-text date) into a UTC
// time. A missing or unparsable value defaults to now: comment dates
// must always be set.
func NormalizeTimestamp(v any) time.Time {
	switch t := v.(type) {
	case float64:
		return epochToTime(int64(t))
	case string:
		if t == "" {
			break
		}
		if epoch, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return epochToTime(epoch)
		}
		if parsed, err := dateparse.ParseAny(t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Now().UTC()
}
