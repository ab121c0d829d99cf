package backup

import (
	"encoding/json"
	"errors"
	"fmt"
)

// IDKey is the reserved record key carrying the document identifier inside a
// snapshot record body.
const IDKey = "_id"

var ErrMissingID = errors.New("snapshot record has no _id")

// Snapshot maps collection name to its records, each with the identifier
// inlined under IDKey.
type Snapshot map[string][]map[string]any

// TagID returns a copy of body with the identifier inlined under IDKey.
func TagID(id string, body map[string]any) map[string]any {
	out := make(map[string]any, len(body)+1)
	out[IDKey] = id
	for key, value := range body {
		out[key] = value
	}
	return out
}

// SplitID extracts the identifier from a snapshot record and returns the
// remaining fields as the document body.
func SplitID(record map[string]any) (string, map[string]any, error) {
	id, ok := record[IDKey].(string)
	if !ok || id == "" {
		return "", nil, ErrMissingID
	}

	body := make(map[string]any, len(record)-1)
	for key, value := range record {
		if key == IDKey {
			continue
		}
		body[key] = value
	}

	return id, body, nil
}

// MarshalSnapshot renders the snapshot as pretty-printed JSON with every
// timestamp in the tree tagged per the timestamp codec. Two-space indentation
// keeps successive backups diffable.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	const op = "backup.MarshalSnapshot"

	encoded := make(map[string][]map[string]any, len(s))
	for collection, records := range s {
		list := make([]map[string]any, len(records))
		for i, record := range records {
			list[i] = EncodeTimestamps(record).(map[string]any)
		}
		encoded[collection] = list
	}

	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// UnmarshalSnapshot is the inverse of MarshalSnapshot: it parses the JSON
// document and reconstructs tagged timestamps anywhere in the tree.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	const op = "backup.UnmarshalSnapshot"

	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(Snapshot, len(raw))
	for collection, records := range raw {
		list := make([]map[string]any, len(records))
		for i, record := range records {
			list[i] = DecodeTimestamps(record).(map[string]any)
		}
		out[collection] = list
	}

	return out, nil
}
