// Package history remembers the folders and files remarks were set on,
// most recent first, for `remark recent`.
package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/raphi011/remark/internal/storage"
)

// maxEntries caps the history; the least recently used entry is evicted.
const maxEntries = 50

// Entry is one path a remark was set on.
type Entry struct {
	Path     string    `json:"path"`
	Kind     string    `json:"kind"`
	LastSet  time.Time `json:"last_set"`
	SetCount int       `json:"set_count"`
}

// History is the list of entries stored in the history file.
type History struct {
	Entries []Entry `json:"entries"`
}

// Load reads the history from path. A missing file is an empty history.
func Load(path string) (*History, error) {
	var h History
	if err := storage.LoadJSON(path, &h); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}
	return &h, nil
}

// Save writes the history to path atomically.
func (h *History) Save(path string) error {
	return storage.SaveJSON(path, h)
}

// samePath compares paths the way Windows does: case-insensitively.
func samePath(a, b string) bool {
	return strings.EqualFold(a, b)
}

// FindByPath returns the entry for path, or nil.
func (h *History) FindByPath(path string) *Entry {
	for i := range h.Entries {
		if samePath(h.Entries[i].Path, path) {
			return &h.Entries[i]
		}
	}
	return nil
}

// RemoveByPath drops the entry for path and reports whether it existed.
func (h *History) RemoveByPath(path string) bool {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		return samePath(e.Path, path)
	})
	return len(h.Entries) != n
}

// RemoveStale drops entries whose path no longer exists and returns how
// many were removed.
func (h *History) RemoveStale() int {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		_, err := os.Stat(e.Path)
		return errors.Is(err, os.ErrNotExist)
	})
	return n - len(h.Entries)
}

// Record bumps path to the front, creating the entry if needed, and evicts
// the oldest entries beyond the cap.
func (h *History) Record(path, kind string, at time.Time) {
	e := Entry{Path: path, Kind: kind, LastSet: at, SetCount: 1}
	if prev := h.FindByPath(path); prev != nil {
		e.SetCount = prev.SetCount + 1
		h.RemoveByPath(path)
	}
	// Front first so a tie on LastSet still ranks this entry newest.
	h.Entries = append([]Entry{e}, h.Entries...)
	h.sort()
	if len(h.Entries) > maxEntries {
		h.Entries = h.Entries[:maxEntries]
	}
}

// sort orders entries most recent first.
func (h *History) sort() {
	slices.SortStableFunc(h.Entries, func(a, b Entry) int {
		return b.LastSet.Compare(a.LastSet)
	})
}

// RecordSet records that a remark was set on path, under the file lock.
func RecordSet(ctx context.Context, historyPath, path, kind string) error {
	return storage.WithLock(ctx, historyPath, func() error {
		h, err := Load(historyPath)
		if err != nil {
			// Corrupted - start fresh
			h = &History{}
		}
		h.Record(path, kind, time.Now())
		return h.Save(historyPath)
	})
}

// Forget removes path from the history, under the file lock.
func Forget(ctx context.Context, historyPath, path string) error {
	return storage.WithLock(ctx, historyPath, func() error {
		h, err := Load(historyPath)
		if err != nil {
			return err
		}
		if !h.RemoveByPath(path) {
			return nil
		}
		return h.Save(historyPath)
	})
}

// Recent returns up to limit entries (all when limit <= 0) whose paths
// still exist, most recent first.
func Recent(historyPath string, limit int) ([]Entry, error) {
	h, err := Load(historyPath)
	if err != nil {
		return nil, err
	}
	h.RemoveStale()
	h.sort()
	if limit > 0 && len(h.Entries) > limit {
		return h.Entries[:limit], nil
	}
	return h.Entries, nil
}
