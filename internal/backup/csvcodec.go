package backup

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Byte-order mark so spreadsheet applications pick up UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var ErrMissingHeader = errors.New("csv: missing header row")

// HeaderOrder builds a deterministic column order for a flat record: the
// leading keys first (when present in the record), then the remaining keys
// sorted.
func HeaderOrder(record map[string]any, leading ...string) []string {
	headers := make([]string, 0, len(record))
	seen := make(map[string]struct{}, len(record))

	for _, key := range leading {
		if _, ok := record[key]; ok {
			headers = append(headers, key)
			seen[key] = struct{}{}
		}
	}

	rest := make([]string, 0, len(record))
	for key := range record {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(headers, rest...)
}

// MarshalCSV renders flat records as UTF-8 CSV text with a leading
// byte-order mark. Columns missing from a record come out empty.
func MarshalCSV(headers []string, records []map[string]any) ([]byte, error) {
	const op = "backup.MarshalCSV"

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("%s header: %w", op, err)
	}

	row := make([]string, len(headers))
	for _, record := range records {
		for i, header := range headers {
			row[i] = stringifyCell(record[header])
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%s row: %w", op, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s flush: %w", op, err)
	}

	return buf.Bytes(), nil
}

// UnmarshalCSV parses CSV text with a header row into one string map per data
// row. Blank lines are skipped; no type coercion happens here.
func UnmarshalCSV(data []byte) ([]map[string]string, error) {
	const op = "backup.UnmarshalCSV"

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingHeader)
	}

	headers := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		out = append(out, record)
	}

	return out, nil
}

func stringifyCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = stringifyCell(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
