package patternset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs(t *testing.T) {
	patterns := FromArgs([]string{"he", "she"})
	assert.Equal(t, []commentzwalter.Pattern{
		{ID: 0, Text: "he"},
		{ID: 1, Text: "she"},
	}, patterns)
}

func TestParseText(t *testing.T) {
	data := []byte("he\n\n# comment\nshe\r\n\\#tag\n trailing space \n")

	patterns, err := ParseText(data)
	require.NoError(t, err)
	assert.Equal(t, []commentzwalter.Pattern{
		{ID: 1, Text: "he"},
		{ID: 4, Text: "she"},
		{ID: 5, Text: "#tag"},
		{ID: 6, Text: " trailing space "},
	}, patterns)
}

func TestParseText_Empty(t *testing.T) {
	_, err := ParseText([]byte("# only comments\n\n"))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "patterns", vErr.Field)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
patterns:
  - pattern: he
  - id: 42
    pattern: she
    description: pronoun
  - pattern: his
    enabled: false
  - pattern: hers
    enabled: true
`)

	patterns, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, []commentzwalter.Pattern{
		{ID: 0, Text: "he"},
		{ID: 42, Text: "she"},
		{ID: 3, Text: "hers"},
	}, patterns)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: "patterns: [unterminated"},
		{name: "empty pattern", data: "patterns:\n  - pattern: \"\"\n"},
		{name: "negative id", data: "patterns:\n  - id: -1\n    pattern: x\n"},
		{name: "duplicate id", data: "patterns:\n  - id: 1\n    pattern: a\n  - id: 1\n    pattern: b\n"},
		{name: "all disabled", data: "patterns:\n  - pattern: a\n    enabled: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "patterns.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("patterns:\n  - pattern: needle\n"), 0600))
	patterns, err := ParseFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []commentzwalter.Pattern{{ID: 0, Text: "needle"}}, patterns)

	textPath := filepath.Join(dir, "patterns.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("patterns:\n"), 0600))
	patterns, err = ParseFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, []commentzwalter.Pattern{{ID: 1, Text: "patterns:"}}, patterns)

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	patterns, err := Load("", []string{"he", "she"})
	require.NoError(t, err)
	assert.Len(t, patterns, 2)

	_, err = Load("", nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "patterns", verr.Field)

	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte("his\nhers\n"), 0o600))
	patterns, err = Load(path, []string{"ignored"})
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "his", patterns[0].Text)
	assert.Equal(t, 1, patterns[0].ID)
}
