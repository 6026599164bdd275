package patternset

import (
	"fmt"

	"github.com/endorses/cwsearch/internal/pkg/commentzwalter"
)

// ValidationError represents a pattern set validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidatePatternYAML validates a single YAML pattern entry
func ValidatePatternYAML(p *PatternYAML) error {
	if p == nil {
		return &ValidationError{Field: "pattern", Message: "entry is empty"}
	}
	if p.Pattern == "" {
		return &ValidationError{Field: "pattern", Message: "pattern cannot be empty"}
	}
	if p.ID != nil && *p.ID < 0 {
		return &ValidationError{Field: "id", Message: fmt.Sprintf("id must not be negative, got %d", *p.ID)}
	}
	return nil
}

// Validate checks that the set can be compiled: at least one pattern, none
// of them empty, and no two patterns sharing an ID.
func Validate(patterns []commentzwalter.Pattern) error {
	if len(patterns) == 0 {
		return &ValidationError{Field: "patterns", Message: "at least one pattern is required"}
	}

	ids := make(map[int]int, len(patterns))
	for i, p := range patterns {
		if p.Text == "" {
			return &ValidationError{Field: fmt.Sprintf("patterns[%d]", i), Message: "pattern cannot be empty"}
		}
		if prev, dup := ids[p.ID]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("patterns[%d]", i),
				Message: fmt.Sprintf("id %d already used by patterns[%d]", p.ID, prev),
			}
		}
		ids[p.ID] = i
	}
	return nil
}
