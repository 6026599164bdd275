package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"", "none", "nfc", "NFC", "nfkc"} {
		_, err := New(mode, false)
		assert.NoError(t, err, mode)
	}

	_, err := New("nfd", false)
	assert.Error(t, err)
}

func TestNormalizer_Identity(t *testing.T) {
	n, err := New(ModeNone, false)
	require.NoError(t, err)

	in := []byte("Hello\xff")
	assert.True(t, n.IsIdentity())
	assert.Equal(t, in, n.Bytes(in))
	assert.Equal(t, "Hello", n.String("Hello"))
}

func TestNormalizer_FoldCase(t *testing.T) {
	n, err := New(ModeNone, true)
	require.NoError(t, err)

	in := []byte("Hello WORLD \xc3\x89")
	out := n.Bytes(in)
	assert.Equal(t, "hello world \xc3\x89", string(out), "non-ASCII bytes are untouched")
	assert.Len(t, out, len(in))
	assert.Equal(t, "Hello WORLD \xc3\x89", string(in), "input is not modified")

	// Already folded input is returned as is
	lower := []byte("abc")
	assert.Equal(t, &lower[0], &n.Bytes(lower)[0])
}

func TestNormalizer_Unicode(t *testing.T) {
	decomposed := "é" // e + combining acute
	composed := "\u00e9"

	nfc, err := New(ModeNFC, false)
	require.NoError(t, err)
	assert.Equal(t, composed, nfc.String(decomposed))
	assert.Equal(t, composed, nfc.String(composed))

	nfkc, err := New(ModeNFKC, false)
	require.NoError(t, err)
	assert.Equal(t, "fi", nfkc.String("\ufb01"), "compatibility ligature is expanded")
	assert.Equal(t, "\ufb01", nfc.String("\ufb01"), "NFC keeps the ligature")
}

func TestNormalizer_Combined(t *testing.T) {
	n, err := New(ModeNFKC, true)
	require.NoError(t, err)
	assert.Equal(t, "file", n.String("\ufb01LE"))
}
