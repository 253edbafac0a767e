package resolve

import (
	"io/fs"
	"slices"
	"strings"
	"time"
)

// memFS is an in-memory tree keyed by slash paths. It lets tests describe
// Windows-style roots like "D:/" on any platform.
type memFS struct {
	nodes    map[string]bool // path -> isDir
	locked   map[string]bool // ReadDir fails for these
	readDirs *[]string       // every ReadDir call, in order
}

// newMemFS builds a tree under root. Entries ending in "/" are directories,
// the rest are regular files. Missing parents are created as directories.
func newMemFS(root string, entries ...string) memFS {
	m := memFS{
		nodes:    map[string]bool{root: true},
		locked:   map[string]bool{},
		readDirs: new([]string),
	}
	for _, e := range entries {
		isDirEntry := strings.HasSuffix(e, "/")
		e = strings.TrimSuffix(e, "/")
		parts := strings.Split(e, "/")
		p := root
		for i, part := range parts {
			p = join(p, part)
			if i < len(parts)-1 || isDirEntry {
				m.nodes[p] = true
			} else {
				m.nodes[p] = false
			}
		}
	}
	return m
}

func parentOf(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return "."
	}
	dir := p[:i]
	switch {
	case dir == "":
		return "/"
	case isDrive(dir):
		return dir + "/"
	}
	return dir
}

func baseOf(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

func (m memFS) Stat(name string) (fs.FileInfo, error) {
	isDir, ok := m.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return memInfo{name: baseOf(name), dir: isDir}, nil
}

func (m memFS) ReadDir(name string) ([]fs.DirEntry, error) {
	*m.readDirs = append(*m.readDirs, name)
	isDir, ok := m.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	if m.locked[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}

	var out []fs.DirEntry
	for p, d := range m.nodes {
		if p != name && parentOf(p) == name {
			out = append(out, fs.FileInfoToDirEntry(memInfo{name: baseOf(p), dir: d}))
		}
	}
	slices.SortFunc(out, func(a, b fs.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })
	return out, nil
}

type memInfo struct {
	name string
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return 0 }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
