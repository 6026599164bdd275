// Package source loads search targets into memory.
//
// The matcher needs random access to the whole buffer, so every target is
// read fully before scanning. A size ceiling protects against accidentally
// pointing the tool at something huge.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	// ErrTooLarge is returned when a target exceeds the size ceiling.
	ErrTooLarge = errors.New("input exceeds size limit")

	// ErrNotFound is returned when a target path does not exist.
	ErrNotFound = errors.New("file not found")
)

// Input is a loaded target.
type Input struct {
	Name string
	Data []byte
}

// Read loads path into memory. A maxSize of zero or less disables the
// ceiling. The path "-" reads standard input.
func Read(path string, maxSize int64) (*Input, error) {
	if path == Stdin {
		return ReadFrom("(stdin)", os.Stdin, maxSize)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxSize > 0 && info.Mode().IsRegular() && info.Size() > maxSize {
		return nil, fmt.Errorf("%s: %w (%d > %d bytes)", path, ErrTooLarge, info.Size(), maxSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadFrom(path, f, maxSize)
}

// ReadFrom loads everything r yields, applying the same ceiling as Read.
func ReadFrom(name string, r io.Reader, maxSize int64) (*Input, error) {
	if maxSize > 0 {
		// One extra byte tells an exact fit apart from an overflow
		r = io.LimitReader(r, maxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", name, ErrTooLarge, maxSize)
	}

	return &Input{Name: name, Data: data}, nil
}
