//go:build windows

package remark

// FileRemarksSupported reports whether files can carry remarks here.
const FileRemarksSupported = true
