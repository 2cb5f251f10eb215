package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/fwojciec/fumosay"
)

// ReadMessage returns the trimmed contents of the file at path. A missing
// file wraps fumosay.ErrFileNotFound; any other failure, including content
// that is not UTF-8, wraps fumosay.ErrFileRead.
func ReadMessage(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own message file
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", fumosay.ErrFileNotFound, path)
	case err != nil:
		return "", fmt.Errorf("%w: %w", fumosay.ErrFileRead, err)
	}
	msg, ok := decode(data)
	if !ok {
		return "", fmt.Errorf("%w: %s: invalid UTF-8", fumosay.ErrFileRead, path)
	}
	return msg, nil
}

// ReadAll reads r to EOF and returns the trimmed contents. Invalid UTF-8
// sequences are replaced with U+FFFD.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if msg, ok := decode(data); ok {
		return msg, nil
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(data), "�")), nil
}
