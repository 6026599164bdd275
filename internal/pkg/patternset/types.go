// Package patternset loads search pattern sets from command-line arguments,
// plain-text files (one pattern per line) and YAML files.
package patternset

// PatternConfig represents the YAML structure of a pattern file
type PatternConfig struct {
	Patterns []*PatternYAML `yaml:"patterns" json:"patterns"`
}

// PatternYAML represents a pattern in YAML/JSON format
type PatternYAML struct {
	ID          *int   `yaml:"id,omitempty" json:"id,omitempty"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Enabled     *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsEnabled reports whether the pattern takes part in the search.
// Patterns are enabled unless explicitly disabled.
func (p *PatternYAML) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}
