package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Normalize rewrites a decoded BSON tree into plain JSON-shaped Go values:
// documents become map[string]any, arrays []any, datetimes time.Time and
// object ids hex strings. The codecs downstream only ever see these shapes.
func Normalize(value any) any {
	switch v := value.(type) {
	case bson.M:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = Normalize(inner)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = Normalize(inner)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(v))
		for _, elem := range v {
			out[elem.Key] = Normalize(elem.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = Normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = Normalize(inner)
		}
		return out
	case bson.DateTime:
		return v.Time().UTC()
	case bson.ObjectID:
		return v.Hex()
	case int32:
		return int64(v)
	default:
		return value
	}
}
