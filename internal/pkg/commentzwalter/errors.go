package commentzwalter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPatterns is reported when Build is called with an empty pattern set.
	ErrNoPatterns = errors.New("pattern set is empty")

	// ErrEmptyPattern is reported when the pattern set contains an empty
	// string, which would make the minimum pattern length zero.
	ErrEmptyPattern = errors.New("pattern is empty")
)

// ConfigError describes a pattern set that cannot be compiled.
type ConfigError struct {
	Field   string
	Index   int // -1 when the error concerns the whole set
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// validatePatterns rejects pattern sets for which pmin would be zero.
func validatePatterns(patterns []Pattern) error {
	if len(patterns) == 0 {
		return &ConfigError{
			Field:   "patterns",
			Index:   -1,
			Message: "at least one pattern is required",
			Err:     ErrNoPatterns,
		}
	}
	for i, p := range patterns {
		if p.Text == "" {
			return &ConfigError{
				Field:   "patterns",
				Index:   i,
				Message: "pattern cannot be empty",
				Err:     ErrEmptyPattern,
			}
		}
	}
	return nil
}
