// Package loader reads a book file into memory in one shot.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports that the book path does not exist.
var ErrNotFound = errors.New("book file not found")

// ErrRead reports any other I/O failure while reading the book.
var ErrRead = errors.New("error reading book file")

// Load returns the full content of the file at path. The read is
// all-or-nothing: no partial content is ever returned. The error matches
// ErrNotFound when the path does not exist and ErrRead for any other I/O
// failure, with the underlying cause wrapped in.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return string(data), nil
}
