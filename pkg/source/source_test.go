package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
)

const arrayInput = `[
  {"headers": {"receiver": "domain_expiration_scanner"}, "status": "INTERESTING",
   "result": {"expiration_date": "2030-01-01"}, "payload": {"domain": "example.com"},
   "created_at": "2024-05-01T12:00:00Z"},
  {"headers": {"receiver": "nuclei"}, "status": "OK", "result": [], "payload": {}, "created_at": "2024-05-01T12:00:00Z"}
]`

func TestDecode_Array(t *testing.T) {
	results, err := Decode([]byte(arrayInput))
	require.NoError(t, err)
	require.Len(t, results, 2)

	tr := results[0]
	assert.Equal(t, "domain_expiration_scanner", tr.Receiver())
	assert.True(t, tr.IsInteresting())
	assert.Equal(t, "example.com", tr.PayloadString("domain"))
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), tr.CreatedAt)
	assert.Equal(t, map[string]any{"expiration_date": "2030-01-01"}, tr.Result)
	assert.Equal(t, report.StatusOK, results[1].Status)
}

func TestDecode_Empty(t *testing.T) {
	results, err := Decode([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDecodeLines(t *testing.T) {
	input := `{"headers": {"receiver": "a"}, "status": "INTERESTING"}

{"headers": {"receiver": "b"}, "status": "OK"}
`
	results, err := DecodeLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[1].Receiver())
}

func TestDecodeLines_ReportsLineNumber(t *testing.T) {
	input := `{"headers": {"receiver": "a"}}
{"headers": {"receiver": "b"}}
{"headers": broken}`
	_, err := DecodeLines(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonl := filepath.Join(dir, "results.jsonl")
	require.NoError(t, os.WriteFile(jsonl, []byte(`{"headers": {"receiver": "a"}}`+"\n"), 0o644))
	array := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(array, []byte(arrayInput), 0o644))

	results, err := LoadAll([]string{jsonl, array})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Receiver())
	assert.Equal(t, "nuclei", results[2].Receiver())
}

func TestLoad_ReadError(t *testing.T) {
	orig := readFile
	defer func() { readFile = orig }()
	readFile = func(string) ([]byte, error) { return nil, errors.New("disk on fire") }

	_, err := Load("results.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestDecode_CreatedAtForms(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-05-01T10:00:00Z"`:             time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		`"2024-05-01T10:00:00"`:              time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		`"2024-05-01 10:00:00"`:              time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		`"2024-05-01 10:00:00.123456"`:       time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC),
		`"2024-05-01 12:00:00+02:00"`:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		`"2024-05-01T10:00:00.5"`:            time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC),
		`"2024-05-01T12:00:00.000000+02:00"`: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			input := `[{"headers": {"receiver": "a"}, "status": "INTERESTING", "created_at": ` + in + `}]`
			results, err := Decode([]byte(input))
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.True(t, want.Equal(results[0].CreatedAt), "got %s", results[0].CreatedAt)
			assert.Equal(t, "a", results[0].Receiver())
			assert.True(t, results[0].IsInteresting())
		})
	}
}

func TestDecode_UnreadableCreatedAtKeepsRecord(t *testing.T) {
	input := `[
  {"headers": {"receiver": "a"}, "status": "INTERESTING", "created_at": "yesterday"},
  {"headers": {"receiver": "b"}, "status": "INTERESTING", "created_at": 1714557600},
  {"headers": {"receiver": "c"}, "status": "INTERESTING", "created_at": null},
  {"headers": {"receiver": "d"}, "status": "INTERESTING", "created_at": "2024-05-01T10:00:00"}
]`
	results, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, tr := range results[:3] {
		assert.True(t, tr.CreatedAt.IsZero(), tr.Receiver())
	}
	assert.False(t, results[3].CreatedAt.IsZero())
}

func TestDecodeLines_NaiveCreatedAt(t *testing.T) {
	input := `{"headers": {"receiver": "a"}, "created_at": "2024-05-01T10:00:00"}
{"headers": {"receiver": "b"}, "created_at": "2024-05-01 10:00:00"}`
	results, err := DecodeLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].CreatedAt, results[1].CreatedAt)
}
