// Package remark sets, reads and deletes the comment Explorer shows for a
// folder or file.
//
// Folders keep their remark in desktop.ini (see package desktopini). Files
// keep it in an NTFS alternate data stream, which only exists on Windows.
package remark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/raphi011/remark/internal/log"
)

// DefaultMaxLength is the longest remark Explorer displays in full.
const DefaultMaxLength = 260

var (
	// ErrUnsupported is returned for operations this platform cannot do.
	ErrUnsupported = errors.New("not supported on this platform")
	// ErrEmptyRemark is returned when a remark is blank after cleanup.
	ErrEmptyRemark = errors.New("remark is empty")
	// ErrNotFound is returned when the target path does not exist.
	ErrNotFound = errors.New("path does not exist")
)

// Handler stores remarks for one kind of filesystem entry.
type Handler interface {
	// Set stores text as the remark of path.
	Set(ctx context.Context, path, text string) error
	// Get returns the remark of path, or "" if it has none.
	Get(ctx context.Context, path string) (string, error)
	// Delete removes the remark of path and reports whether there was one.
	Delete(ctx context.Context, path string) (bool, error)
	// Supports reports whether path is an entry this handler manages.
	Supports(path string) bool
}

// ForPath returns the handler for path. maxLength <= 0 means
// DefaultMaxLength.
func ForPath(path string, maxLength int) (Handler, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	switch {
	case fi.IsDir():
		return FolderHandler{MaxLength: maxLength}, nil
	case fi.Mode().IsRegular():
		if !FileRemarksSupported {
			return nil, fmt.Errorf("file remarks: %w", ErrUnsupported)
		}
		return FileHandler{MaxLength: maxLength}, nil
	default:
		return nil, fmt.Errorf("%s is neither a folder nor a regular file", path)
	}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Clean flattens line breaks, trims surrounding space and cuts text to
// maxLength runes. It reports whether text was cut.
func Clean(text string, maxLength int) (string, bool, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	text = strings.TrimSpace(lineBreaks.Replace(text))
	if text == "" {
		return "", false, ErrEmptyRemark
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text, false, nil
	}
	return strings.TrimSpace(string([]rune(text)[:maxLength])), true, nil
}

// prepare runs Clean and warns about truncation.
func prepare(ctx context.Context, text string, maxLength int) (string, error) {
	cleaned, cut, err := Clean(text, maxLength)
	if err != nil {
		return "", err
	}
	if cut {
		if maxLength <= 0 {
			maxLength = DefaultMaxLength
		}
		log.FromContext(ctx).Warnf("remark is longer than %d characters and was truncated", maxLength)
	}
	return cleaned, nil
}
