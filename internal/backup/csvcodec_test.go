package backup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	records := []map[string]any{
		{"id": "a1", "nomeRazaoSocial": "Auto Peças União", "observacao": "vip, atende sábado"},
		{"id": "b2", "nomeRazaoSocial": "José \"Zeca\" Silva", "observacao": "linha1\nlinha2"},
		{"id": "c3", "nomeRazaoSocial": "Sem observação", "observacao": ""},
	}
	headers := HeaderOrder(records[0], "id")

	data, err := MarshalCSV(headers, records)
	require.NoError(t, err)

	rows, err := UnmarshalCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, len(records))

	for i, row := range rows {
		for _, h := range headers {
			assert.Equal(t, records[i][h], row[h], "row %d column %s", i, h)
		}
	}
}

func TestMarshalCSVStartsWithBOM(t *testing.T) {
	t.Parallel()

	data, err := MarshalCSV([]string{"id"}, []map[string]any{{"id": "x"}})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestMarshalCSVStringifiesValues(t *testing.T) {
	t.Parallel()

	data, err := MarshalCSV(
		[]string{"b", "n", "f", "arr", "missing"},
		[]map[string]any{{"b": true, "n": int64(7), "f": 12.5, "arr": []any{"x", "y"}}},
	)
	require.NoError(t, err)

	rows, err := UnmarshalCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "true", rows[0]["b"])
	assert.Equal(t, "7", rows[0]["n"])
	assert.Equal(t, "12.5", rows[0]["f"])
	assert.Equal(t, "x,y", rows[0]["arr"])
	assert.Equal(t, "", rows[0]["missing"])
}

func TestUnmarshalCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []map[string]string
		wantErr error
	}{
		{
			name: "header only yields no rows",
			in:   "id,nome\n",
			want: []map[string]string{},
		},
		{
			name: "blank lines are skipped",
			in:   "id,nome\na,um\n,\nb,dois\n",
			want: []map[string]string{
				{"id": "a", "nome": "um"},
				{"id": "b", "nome": "dois"},
			},
		},
		{
			name: "short row leaves trailing columns absent",
			in:   "id,nome,extra\na,um\n",
			want: []map[string]string{{"id": "a", "nome": "um"}},
		},
		{
			name:    "empty input is malformed",
			in:      "",
			wantErr: ErrMissingHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := UnmarshalCSV([]byte(tt.in))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderOrder(t *testing.T) {
	t.Parallel()

	record := map[string]any{"zeta": 1, "id": "x", "alpha": 2}

	assert.Equal(t, []string{"id", "alpha", "zeta"}, HeaderOrder(record, "id"))
	assert.Equal(t, []string{"alpha", "id", "zeta"}, HeaderOrder(record))
}
