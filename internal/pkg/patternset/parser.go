package patternset

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
	"gopkg.in/yaml.v3"
)

// FromArgs turns positional arguments into patterns; IDs are positions.
func FromArgs(args []string) []commentzwalter.Pattern {
	patterns := make([]commentzwalter.Pattern, len(args))
	for i, a := range args {
		patterns[i] = commentzwalter.Pattern{ID: i, Text: a}
	}
	return patterns
}

// ParseFile reads a pattern file. Files ending in .yaml or .yml are parsed as
// YAML (see PatternConfig); anything else is read as text with one pattern
// per line.
func ParseFile(path string) ([]commentzwalter.Pattern, error) {
	// #nosec G304 -- Path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(data)
	}
}

// ParseYAML parses a YAML pattern document. Disabled entries are skipped.
// Entries without an explicit id get their position in the file.
func ParseYAML(data []byte) ([]commentzwalter.Pattern, error) {
	var config PatternConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pattern YAML: %w", err)
	}

	var patterns []commentzwalter.Pattern
	for i, entry := range config.Patterns {
		if err := ValidatePatternYAML(entry); err != nil {
			return nil, fmt.Errorf("patterns[%d]: %w", i, err)
		}
		if !entry.IsEnabled() {
			continue
		}
		id := i
		if entry.ID != nil {
			id = *entry.ID
		}
		patterns = append(patterns, commentzwalter.Pattern{ID: id, Text: entry.Pattern})
	}

	if err := Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// ParseText parses one pattern per line. Blank lines and lines starting with
// '#' are ignored; a leading "\#" stands for a literal '#'. Trailing carriage
// returns are stripped, other whitespace is part of the pattern. IDs are
// 1-based line numbers.
func ParseText(data []byte) ([]commentzwalter.Pattern, error) {
	var patterns []commentzwalter.Pattern

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, `\#`):
			text = text[1:]
		}
		patterns = append(patterns, commentzwalter.Pattern{ID: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read patterns: %w", err)
	}

	if err := Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// Load resolves the pattern set for a command: from file when a path is
// given, from args otherwise. The result is validated.
func Load(file string, args []string) ([]commentzwalter.Pattern, error) {
	var patterns []commentzwalter.Pattern
	if file != "" {
		var err error
		if patterns, err = ParseFile(file); err != nil {
			return nil, err
		}
	} else {
		patterns = FromArgs(args)
	}

	if err := Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}
