// Package fsutil provides file system utilities for gospell: categorized
// reads and atomic writes.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotUTF8 indicates the file content is not valid UTF-8.
	ErrNotUTF8 = errors.New("content is not valid UTF-8")
)

// ReadFile reads a file, mapping OS errors onto the package sentinels so
// callers can categorize failures without inspecting error strings.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}

// ReadTextFile reads a file and verifies the content is valid UTF-8, which
// the tokenizer requires.
func ReadTextFile(ctx context.Context, path string) (string, error) {
	content, err := ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrNotUTF8, path)
	}
	return string(content), nil
}
