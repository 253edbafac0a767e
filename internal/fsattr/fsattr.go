// Package fsattr sets the Windows file attributes that make Explorer honor a
// folder's desktop.ini.
//
// Explorer only reads desktop.ini when the folder carries the read-only bit,
// and the file itself is expected to be hidden and system. On other
// platforms these attributes do not exist and every call is a no-op.
package fsattr

// Attr is a set of file attributes. Values match the Win32 FILE_ATTRIBUTE_*
// constants.
type Attr uint32

const (
	ReadOnly Attr = 0x1
	Hidden   Attr = 0x2
	System   Attr = 0x4
)

func (a Attr) String() string {
	s := ""
	for _, f := range []struct {
		bit  Attr
		name string
	}{{ReadOnly, "R"}, {Hidden, "H"}, {System, "S"}} {
		if a&f.bit != 0 {
			s += f.name
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

// MarkHiddenSystem adds the hidden and system attributes to path.
func MarkHiddenSystem(path string) error {
	return Set(path, Hidden|System, 0)
}

// ClearHiddenSystem removes the hidden and system attributes from path so it
// can be rewritten.
func ClearHiddenSystem(path string) error {
	return Set(path, 0, Hidden|System)
}

// MarkReadOnly adds the read-only attribute to path.
func MarkReadOnly(path string) error {
	return Set(path, ReadOnly, 0)
}

// Has reports whether path carries every attribute in want. It is always
// true where attributes are not supported.
func Has(path string, want Attr) (bool, error) {
	if !Supported {
		return true, nil
	}
	got, err := Get(path)
	if err != nil {
		return false, err
	}
	return got&want == want, nil
}
