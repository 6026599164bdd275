// Package normalize prepares patterns and input buffers before they reach the
// matcher. Both sides must go through the same Normalizer, otherwise
// equivalent text will not match.
//
// Pipeline order
// 1 Unicode normalization (NFC or NFKC), only when requested
// 2 ASCII case folding, only when requested
//
// Case folding is restricted to ASCII so that it never changes the length of
// the buffer; match offsets then still refer to the input as read. Unicode
// normalization can change lengths, in which case offsets refer to the
// normalized buffer.
package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Modes accepted by New.
const (
	ModeNone = "none"
	ModeNFC  = "nfc"
	ModeNFKC = "nfkc"
)

// Normalizer is safe for concurrent use.
type Normalizer struct {
	form     norm.Form
	unicode  bool
	foldCase bool
}

// New constructs a Normalizer for the given mode ("", none, nfc, nfkc).
func New(mode string, foldCase bool) (*Normalizer, error) {
	n := &Normalizer{foldCase: foldCase}
	switch strings.ToLower(mode) {
	case "", ModeNone:
	case ModeNFC:
		n.form, n.unicode = norm.NFC, true
	case ModeNFKC:
		n.form, n.unicode = norm.NFKC, true
	default:
		return nil, fmt.Errorf("unknown normalization mode %q", mode)
	}
	return n, nil
}

// IsIdentity reports whether Bytes returns its input unchanged.
func (n *Normalizer) IsIdentity() bool {
	return !n.unicode && !n.foldCase
}

// Bytes returns the normalized form of b. The input is never modified; when
// nothing needs to change, b itself is returned.
func (n *Normalizer) Bytes(b []byte) []byte {
	if n.unicode && !n.form.IsNormal(b) {
		b = n.form.Bytes(b)
	}
	if n.foldCase {
		b = foldASCII(b)
	}
	return b
}

// String returns the normalized form of s.
func (n *Normalizer) String(s string) string {
	if n.IsIdentity() {
		return s
	}
	return string(n.Bytes([]byte(s)))
}

// foldASCII lowercases A-Z, copying only if there is something to change.
func foldASCII(b []byte) []byte {
	first := -1
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			first = i
			break
		}
	}
	if first < 0 {
		return b
	}

	out := make([]byte, len(b))
	copy(out, b[:first])
	for i := first; i < len(b); i++ {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
