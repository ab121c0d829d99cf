// Package backup holds the pure encoding building blocks of the backup and
// restore pipeline: record flattening, timestamp tagging, CSV and ZIP
// packaging, and the full JSON snapshot codec. Nothing here touches the store.
package backup

import "time"

// TimestampLayout is the human-readable form timestamps take in CSV exports.
// CSV import does not parse this form back; imported rows keep it as a plain
// string (a known asymmetry of the format, kept for compatibility).
const TimestampLayout = "2006-01-02 15:04:05"

// Flatten converts a record with at most one level of nesting into a flat
// key/value map. Timestamps become local-time strings, nested maps expand
// into dotted keys, slices pass through untouched.
func Flatten(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for key, value := range record {
		switch v := value.(type) {
		case time.Time:
			out[key] = v.Local().Format(TimestampLayout)
		case map[string]any:
			for inner, innerValue := range v {
				out[key+"."+inner] = innerValue
			}
		default:
			out[key] = value
		}
	}

	return out
}
