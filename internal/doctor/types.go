package doctor

import "github.com/raphi011/remark/internal/desktopini"

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEncoding represents desktop.ini files Explorer cannot decode.
	CategoryEncoding IssueCategory = "encoding"
	// CategoryAttributes represents missing file or folder attributes.
	CategoryAttributes IssueCategory = "attributes"
	// CategoryContent represents desktop.ini content problems.
	CategoryContent IssueCategory = "content"
)

// FixAction names the repair for an issue.
type FixAction string

const (
	FixNone       FixAction = ""
	FixReencode   FixAction = "reencode"
	FixHideIni    FixAction = "hide_ini"
	FixMarkFolder FixAction = "mark_folder"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Path        string        `json:"path"`                 // desktop.ini or folder path
	Description string        `json:"description"`          // human-readable description
	FixAction   FixAction     `json:"fix_action,omitempty"` // what --fix would do
	Category    IssueCategory `json:"category"`
}

// Fixable reports whether --fix can repair the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != FixNone
}

// Report is the result of checking one folder.
type Report struct {
	Folder   string              `json:"folder"`
	HasIni   bool                `json:"has_desktop_ini"`
	Encoding desktopini.Encoding `json:"encoding,omitempty"`
	Remark   string              `json:"remark,omitempty"`
	Issues   []Issue             `json:"issues"`
	Fixed    int                 `json:"fixed"`
	Failed   int                 `json:"failed"`
}
