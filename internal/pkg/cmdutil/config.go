// Package cmdutil provides shared utilities for CLI command implementations.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BindFlags binds every flag in flags whose name appears in keys to the
// viper key it maps to. Flag names use dashes, keys use underscores:
// "max-size" under section "search" becomes "search.max_size".
func BindFlags(flags *pflag.FlagSet, section string, names ...string) error {
	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		key := section + "." + strings.ReplaceAll(name, "-", "_")
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// ParseSizeString parses a size string (e.g., "100M", "1G", "500K") and returns bytes.
// Supported suffixes: K/k (KiB), M/m (MiB), G/g (GiB), T/t (TiB).
func ParseSizeString(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	lastChar := s[len(s)-1]
	var multiplier int64 = 1

	switch lastChar {
	case 'K', 'k':
		multiplier = 1024
		s = s[:len(s)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		s = s[:len(s)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	case 'T', 't':
		multiplier = 1024 * 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}

	var value int64
	var rest string
	n, err := fmt.Sscanf(s, "%d%s", &value, &rest)
	if n == 0 {
		return 0, fmt.Errorf("invalid size value: %w", err)
	}
	if rest != "" {
		return 0, fmt.Errorf("invalid size value: trailing %q", rest)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size value: %d is negative", value)
	}

	return value * multiplier, nil
}
