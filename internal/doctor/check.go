package doctor

import (
	"fmt"
	"os"

	"github.com/raphi011/remark/internal/desktopini"
	"github.com/raphi011/remark/internal/fsattr"
)

// Check inspects folder and returns its report without changing anything.
func Check(folder string) (*Report, error) {
	fi, err := os.Stat(folder)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a folder", folder)
	}

	r := &Report{Folder: folder}
	if !desktopini.Exists(folder) {
		return r, nil
	}
	r.HasIni = true

	f, err := desktopini.Load(folder)
	if err != nil {
		return nil, err
	}
	r.Encoding = f.Encoding
	r.Remark = f.InfoTip()

	ini := desktopini.Path(folder)
	r.Issues = append(r.Issues, checkEncoding(ini, f)...)
	attrIssues, err := checkAttributes(folder, ini, f)
	if err != nil {
		return nil, err
	}
	r.Issues = append(r.Issues, attrIssues...)
	r.Issues = append(r.Issues, checkContent(ini, f)...)
	return r, nil
}

func checkEncoding(ini string, f *desktopini.File) []Issue {
	if f.Encoding.IsUnicode() {
		return nil
	}
	return []Issue{{
		Path:        ini,
		Description: fmt.Sprintf("stored as %s, Explorer needs UTF-16 to show non-ASCII remarks", f.Encoding),
		FixAction:   FixReencode,
		Category:    CategoryEncoding,
	}}
}

func checkAttributes(folder, ini string, f *desktopini.File) ([]Issue, error) {
	var issues []Issue

	hidden, err := fsattr.Has(ini, fsattr.Hidden|fsattr.System)
	if err != nil {
		return nil, err
	}
	if !hidden {
		issues = append(issues, Issue{
			Path:        ini,
			Description: "not marked hidden and system",
			FixAction:   FixHideIni,
			Category:    CategoryAttributes,
		})
	}

	if !f.HasShellClassInfo() {
		return issues, nil
	}
	readOnly, err := fsattr.Has(folder, fsattr.ReadOnly)
	if err != nil {
		return nil, err
	}
	if !readOnly {
		issues = append(issues, Issue{
			Path:        folder,
			Description: "folder is not read-only, so Explorer ignores desktop.ini",
			FixAction:   FixMarkFolder,
			Category:    CategoryAttributes,
		})
	}
	return issues, nil
}

func checkContent(ini string, f *desktopini.File) []Issue {
	switch {
	case !f.HasShellClassInfo():
		return []Issue{{
			Path:        ini,
			Description: "no [.ShellClassInfo] section",
			Category:    CategoryContent,
		}}
	case f.InfoTip() == "":
		return []Issue{{
			Path:        ini,
			Description: "[.ShellClassInfo] has no InfoTip",
			Category:    CategoryContent,
		}}
	}
	return nil
}
