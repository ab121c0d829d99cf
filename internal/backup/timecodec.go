package backup

import "time"

const (
	tagKey       = "_type"
	valueKey     = "value"
	timestampTag = "timestamp"

	// ISO-8601 with millisecond precision, always UTC on encode.
	isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"
)

// EncodeTimestamps walks a JSON-shaped tree and replaces every time.Time with
// the tagged form {"_type":"timestamp","value":"<ISO-8601 ms>"}. The input is
// not modified.
func EncodeTimestamps(value any) any {
	switch v := value.(type) {
	case time.Time:
		return map[string]any{
			tagKey:   timestampTag,
			valueKey: v.UTC().Format(isoMillisLayout),
		}
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = EncodeTimestamps(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = EncodeTimestamps(inner)
		}
		return out
	default:
		return value
	}
}

// DecodeTimestamps is the exact inverse of EncodeTimestamps. Any object shaped
// {_type:"timestamp", value:<string>} anywhere in the tree is replaced with
// the reconstructed time.Time; everything else is passed through.
func DecodeTimestamps(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if ts, ok := taggedTimestamp(v); ok {
			return ts
		}
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = DecodeTimestamps(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = DecodeTimestamps(inner)
		}
		return out
	default:
		return value
	}
}

func taggedTimestamp(m map[string]any) (time.Time, bool) {
	if len(m) != 2 {
		return time.Time{}, false
	}
	tag, ok := m[tagKey].(string)
	if !ok || tag != timestampTag {
		return time.Time{}, false
	}
	raw, ok := m[valueKey].(string)
	if !ok {
		return time.Time{}, false
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}

	return ts, true
}
