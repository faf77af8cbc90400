package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := `{"name":"Emily"}

not json at all
{"name":"John"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"name":"Emily"}`, string(records[0]))
	assert.JSONEq(t, `{"name":"John"}`, string(records[1]))
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}

	require.NoError(t, writeJSONL(path, records))

	back, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.JSONEq(t, `{"a":1}`, string(back[0]))

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteJSONLReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{"old":true}`)}))
	require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{"new":true}`)}))

	back, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.JSONEq(t, `{"new":true}`, string(back[0]))
}

func TestWriteJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jsonl")
	require.NoError(t, writeJSONL(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestInitJSONLFilesDoesNotClobber(t *testing.T) {
	dataDir := t.TempDir()
	existing := filepath.Join(dataDir, contactsJSONL)
	require.NoError(t, os.WriteFile(existing, []byte(`{"name":"Emily","phones":[]}`+"\n"), 0o644))

	require.NoError(t, initJSONLFiles(dataDir))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Emily", "existing file must be untouched")

	info, err := os.Stat(filepath.Join(dataDir, notesJSONL))
	require.NoError(t, err)
	assert.Zero(t, info.Size(), "missing file is created empty")
}
