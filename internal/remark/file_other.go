//go:build !windows

package remark

// FileRemarksSupported reports whether files can carry remarks here.
// Alternate data streams only exist on NTFS.
const FileRemarksSupported = false
