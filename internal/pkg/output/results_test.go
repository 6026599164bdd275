package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatches(t *testing.T) []commentzwalter.MatchResult {
	t.Helper()
	cw, err := commentzwalter.Compile("he", "she", "his", "hers")
	require.NoError(t, err)
	return cw.Scan([]byte("ahishers"))
}

func TestWriteMatches(t *testing.T) {
	matches := sampleMatches(t)

	var buf bytes.Buffer
	require.NoError(t, WriteMatches(&buf, "", matches))
	assert.Equal(t, "his: 2\nhe: 5\nshe: 4\nhers: 5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMatches(&buf, "a.txt", matches[:1]))
	assert.Equal(t, "a.txt:his: 2\n", buf.String())
}

func TestWriteCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCount(&buf, "", 4))
	require.NoError(t, WriteCount(&buf, "b.txt", 0))
	assert.Equal(t, "4\nb.txt:0\n", buf.String())
}

func TestWriteTables(t *testing.T) {
	cw, err := commentzwalter.Compile("abc", "xab")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, cw.Tables()))
	assert.Equal(t, "0: 1,3\n1: 3,3\n2: 3,3\n3: 3,3\n4: 1,3\n5: 1,1\n6: 3,1\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTablesDetailed(&buf, cw.Tables()))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 8)
	assert.Equal(t, "3\t3\t2\t5\ttrue\t3\t3", string(lines[4]))
}

func TestFileReportJSON(t *testing.T) {
	report := NewFileReport("input.txt", 8, sampleMatches(t))
	assert.Equal(t, 4, report.Count)

	data, err := MarshalJSONPretty(report, false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "input.txt", decoded["file"])
	assert.Len(t, decoded["matches"], 4)
	assert.NotContains(t, decoded, "tables")

	first := decoded["matches"].([]any)[0].(map[string]any)
	assert.Equal(t, "his", first["text"])
	assert.Equal(t, float64(2), first["offset"])
}

func TestMarshalJSONPretty(t *testing.T) {
	compact, err := MarshalJSONPretty(map[string]int{"a": 1}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(compact))

	pretty, err := MarshalJSONPretty(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(pretty))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}

func TestWriteJSON_CompactForBuffers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}
