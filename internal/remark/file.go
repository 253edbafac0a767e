package remark

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// streamName is the alternate data stream holding a file's remark.
const streamName = "comment"

// FileHandler keeps remarks in an NTFS alternate data stream next to the
// file's content.
type FileHandler struct {
	MaxLength int
}

func streamPath(path string) string {
	return path + ":" + streamName
}

func (FileHandler) Supports(path string) bool {
	if !FileRemarksSupported {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func (h FileHandler) Set(ctx context.Context, path, text string) error {
	if !FileRemarksSupported {
		return fmt.Errorf("file remarks: %w", ErrUnsupported)
	}
	if !h.Supports(path) {
		return fmt.Errorf("%w: %s is not a file", ErrNotFound, path)
	}
	text, err := prepare(ctx, text, h.MaxLength)
	if err != nil {
		return err
	}
	if err := os.WriteFile(streamPath(path), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write remark stream: %w", err)
	}
	return nil
}

func (FileHandler) Get(_ context.Context, path string) (string, error) {
	if !FileRemarksSupported {
		return "", fmt.Errorf("file remarks: %w", ErrUnsupported)
	}
	data, err := os.ReadFile(streamPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read remark stream: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (FileHandler) Delete(_ context.Context, path string) (bool, error) {
	if !FileRemarksSupported {
		return false, fmt.Errorf("file remarks: %w", ErrUnsupported)
	}
	err := os.Remove(streamPath(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("remove remark stream: %w", err)
	}
	return true, nil
}
