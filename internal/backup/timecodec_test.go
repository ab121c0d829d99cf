package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, 11, 2, 18, 4, 5, 123_000_000, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{name: "bare timestamp", in: ts},
		{name: "top-level field", in: map[string]any{"dataVenda": ts}},
		{
			name: "nested inside map and slice",
			in: map[string]any{
				"movimentacoes": []any{
					map[string]any{"dataMovimentacao": ts, "quantidade": float64(2)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DecodeTimestamps(EncodeTimestamps(tt.in))

			assert.Equal(t, tt.in, got)
		})
	}
}

func TestEncodeTimestampsShape(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 31, 23, 59, 59, 987_000_000, time.FixedZone("BRT", -3*3600))

	got := EncodeTimestamps(ts)

	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "timestamp", m["_type"])
	assert.Equal(t, "2024-02-01T02:59:59.987Z", m["value"])
}

func TestDecodeTimestampsLeavesLookalikesAlone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
	}{
		{name: "wrong tag", in: map[string]any{"_type": "geopoint", "value": "x"}},
		{name: "extra field", in: map[string]any{"_type": "timestamp", "value": "2024-01-01T00:00:00.000Z", "extra": 1}},
		{name: "non-string value", in: map[string]any{"_type": "timestamp", "value": float64(12)}},
		{name: "unparseable value", in: map[string]any{"_type": "timestamp", "value": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.in, DecodeTimestamps(tt.in))
		})
	}
}
