// Package desktopini reads and writes the InfoTip of a folder's desktop.ini.
//
// Explorer only shows localized text from desktop.ini when the file is
// stored as Unicode, so everything written here is UTF-16LE with a BOM and
// CRLF line endings. Files in other encodings are still read, and can be
// converted with [FixEncoding].
//
// Other sections and keys (IconResource, LocalizedResourceName, ...) are
// kept as they are.
package desktopini

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	// FileName is the name of the folder customization file.
	FileName = "desktop.ini"
	// Section holds the shell settings of the folder.
	Section = ".ShellClassInfo"
	// InfoTipKey is the key Explorer shows as the folder's comment.
	InfoTipKey = "InfoTip"
)

// These ini globals are owned by this package; nothing else in remark
// serializes ini files.
func init() {
	ini.PrettyFormat = false
	ini.PrettySection = false
	ini.LineBreak = "\r\n"
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// Path returns the desktop.ini path inside folder.
func Path(folder string) string {
	return filepath.Join(folder, FileName)
}

// Exists reports whether folder has a desktop.ini.
func Exists(folder string) bool {
	_, err := os.Stat(Path(folder))
	return err == nil
}

// File is a parsed desktop.ini.
type File struct {
	ini      *ini.File
	Encoding Encoding
}

// New returns an empty File.
func New() *File {
	return &File{ini: ini.Empty(loadOptions), Encoding: UTF16LE}
}

// Parse decodes and parses raw desktop.ini bytes.
func Parse(data []byte) (*File, error) {
	text, enc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	f, err := ini.LoadSources(loadOptions, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return &File{ini: f, Encoding: enc}, nil
}

// Load reads folder's desktop.ini. The error wraps fs.ErrNotExist when the
// file is missing.
func Load(folder string) (*File, error) {
	data, err := os.ReadFile(Path(folder))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadOrNew is Load, returning an empty File when none exists yet.
func LoadOrNew(folder string) (*File, error) {
	f, err := Load(folder)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	return f, err
}

// infoTip finds the InfoTip key. Explorer treats names case-insensitively.
func (f *File) infoTip() (*ini.Section, *ini.Key) {
	for _, sec := range f.ini.Sections() {
		if !strings.EqualFold(sec.Name(), Section) {
			continue
		}
		for _, k := range sec.Keys() {
			if strings.EqualFold(k.Name(), InfoTipKey) {
				return sec, k
			}
		}
	}
	return nil, nil
}

// HasShellClassInfo reports whether the [.ShellClassInfo] section exists.
func (f *File) HasShellClassInfo() bool {
	for _, sec := range f.ini.Sections() {
		if strings.EqualFold(sec.Name(), Section) {
			return true
		}
	}
	return false
}

// InfoTip returns the trimmed InfoTip value, or "" if there is none.
func (f *File) InfoTip() string {
	_, k := f.infoTip()
	if k == nil {
		return ""
	}
	return strings.TrimSpace(k.String())
}

// SetInfoTip creates or replaces the InfoTip value.
func (f *File) SetInfoTip(tip string) {
	tip = strings.TrimSpace(strings.ReplaceAll(tip, "`", "'"))
	if _, k := f.infoTip(); k != nil {
		k.SetValue(tip)
		return
	}
	// NewKey, unlike Key, never falls back to the default section.
	_, _ = f.section().NewKey(InfoTipKey, tip)
}

// section returns the existing [.ShellClassInfo] section in whatever case it
// was written, or creates it.
func (f *File) section() *ini.Section {
	for _, sec := range f.ini.Sections() {
		if strings.EqualFold(sec.Name(), Section) {
			return sec
		}
	}
	return f.ini.Section(Section)
}

// RemoveInfoTip deletes the InfoTip key and reports whether it existed.
// The [.ShellClassInfo] section goes too once it has no keys left.
func (f *File) RemoveInfoTip() bool {
	sec, k := f.infoTip()
	if k == nil {
		return false
	}
	sec.DeleteKey(k.Name())
	if len(sec.Keys()) == 0 {
		f.ini.DeleteSection(sec.Name())
	}
	return true
}

// Empty reports whether the file holds no keys at all.
func (f *File) Empty() bool {
	for _, sec := range f.ini.Sections() {
		if len(sec.Keys()) > 0 {
			return false
		}
	}
	return true
}

// Bytes serializes the file as UTF-16LE.
func (f *File) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.ini.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize %s: %w", FileName, err)
	}
	return Encode(buf.String())
}

// Save writes the file into folder as UTF-16LE.
func (f *File) Save(folder string) error {
	data, err := f.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(Path(folder), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", Path(folder), err)
	}
	f.Encoding = UTF16LE
	return nil
}

// ReadInfoTip returns folder's InfoTip, or "" when there is no desktop.ini
// or no InfoTip in it.
func ReadInfoTip(folder string) (string, error) {
	f, err := Load(folder)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return f.InfoTip(), nil
}

// WriteInfoTip sets folder's InfoTip, creating desktop.ini if needed.
func WriteInfoTip(folder, tip string) error {
	f, err := LoadOrNew(folder)
	if err != nil {
		return err
	}
	f.SetInfoTip(tip)
	return f.Save(folder)
}

// RemoveInfoTip deletes folder's InfoTip. When nothing else is left in
// desktop.ini the file itself is removed and deleted is true.
func RemoveInfoTip(folder string) (deleted bool, err error) {
	f, err := Load(folder)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !f.RemoveInfoTip() {
		return false, nil
	}
	if f.Empty() {
		if err := os.Remove(Path(folder)); err != nil {
			return false, fmt.Errorf("remove %s: %w", Path(folder), err)
		}
		return true, nil
	}
	return false, f.Save(folder)
}

// FixEncoding rewrites folder's desktop.ini as UTF-16LE and returns the
// encoding it had before. Files already in UTF-16 are left alone.
func FixEncoding(folder string) (Encoding, error) {
	f, err := Load(folder)
	if err != nil {
		return NoEncoding, err
	}
	was := f.Encoding
	if was.IsUnicode() {
		return was, nil
	}
	return was, f.Save(folder)
}
