package fsattr

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAttr_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    Attr
		want string
	}{
		{0, "-"},
		{ReadOnly, "R"},
		{Hidden | System, "HS"},
		{ReadOnly | Hidden | System, "RHS"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Attr(%#x).String() = %q, want %q", uint32(tt.a), got, tt.want)
		}
	}
}

// Scenario: mark a file hidden+system, then clear it again
// Expected: Has follows the changes where attributes exist and is always
// true elsewhere
func TestMarkAndClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "desktop.ini")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MarkHiddenSystem(path); err != nil {
		t.Fatalf("MarkHiddenSystem() error = %v", err)
	}
	ok, err := Has(path, Hidden|System)
	if err != nil || !ok {
		t.Errorf("Has(Hidden|System) after mark = %v, %v", ok, err)
	}

	if err := ClearHiddenSystem(path); err != nil {
		t.Fatalf("ClearHiddenSystem() error = %v", err)
	}
	ok, err = Has(path, Hidden)
	if err != nil {
		t.Fatal(err)
	}
	if Supported && ok {
		t.Error("Has(Hidden) after clear = true")
	}
}

func TestSet_MissingPath(t *testing.T) {
	t.Parallel()

	if err := MarkReadOnly(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("MarkReadOnly() on missing path returned nil error")
	}
}
