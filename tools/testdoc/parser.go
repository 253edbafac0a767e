package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// TestFunc is a parsed test function.
type TestFunc struct {
	Name     string // e.g. "TestRoot_SetUnquoted"
	Scenario string // text after "Scenario:", if any
	Expected string // text after "Expected:", if any
	Summary  string // first line of a doc comment without scenario markers
	Line     int
	IsTable  bool // ranges over cases calling t.Run
}

// TestPackage is the set of tests of one directory.
type TestPackage struct {
	Name  string // directory relative to root, slash separated
	Tests []TestFunc
}

// ParseTestFiles walks root and parses every *_test.go file. When filter is
// set only packages whose path contains it are returned.
func ParseTestFiles(root, filter string) ([]TestPackage, error) {
	byPkg := make(map[string]*TestPackage)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			rel = filepath.Dir(path)
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			rel = filepath.Base(root)
		}
		if filter != "" && !strings.Contains(rel, filter) {
			return nil
		}

		tests, err := parseTestFile(path)
		if err != nil {
			return err
		}
		if len(tests) == 0 {
			return nil
		}

		pkg, ok := byPkg[rel]
		if !ok {
			pkg = &TestPackage{Name: rel}
			byPkg[rel] = pkg
		}
		pkg.Tests = append(pkg.Tests, tests...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages := make([]TestPackage, 0, len(byPkg))
	for _, pkg := range byPkg {
		slices.SortFunc(pkg.Tests, func(a, b TestFunc) int {
			return strings.Compare(a.Name, b.Name)
		})
		packages = append(packages, *pkg)
	}
	slices.SortFunc(packages, func(a, b TestPackage) int {
		return strings.Compare(a.Name, b.Name)
	})
	return packages, nil
}

// parseTestFile returns the Test functions declared in path.
func parseTestFile(path string) ([]TestFunc, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var tests []TestFunc
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "Test") || !isTestFunction(fn) {
			continue
		}

		tf := TestFunc{
			Name:    fn.Name.Name,
			Line:    fset.Position(fn.Pos()).Line,
			IsTable: detectTableDriven(fn),
		}
		if fn.Doc != nil {
			tf.Scenario, tf.Expected, tf.Summary = parseDoc(fn.Doc.Text())
		}
		tests = append(tests, tf)
	}
	return tests, nil
}

// parseDoc splits a doc comment into its scenario, expected outcome and
// a free-form summary line. Marker lines may wrap onto following lines.
func parseDoc(doc string) (scenario, expected, summary string) {
	var cur *string
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			cur = nil
		case strings.HasPrefix(line, "Scenario:"):
			scenario = strings.TrimSpace(strings.TrimPrefix(line, "Scenario:"))
			cur = &scenario
		case strings.HasPrefix(line, "Expected:"):
			expected = strings.TrimSpace(strings.TrimPrefix(line, "Expected:"))
			cur = &expected
		case cur != nil:
			*cur += " " + line
		case summary == "":
			summary = line
		}
	}
	return scenario, expected, summary
}

// isTestFunction reports whether fn takes a single *testing.T or *testing.B.
func isTestFunction(fn *ast.FuncDecl) bool {
	if fn.Type.Params == nil || len(fn.Type.Params.List) != 1 {
		return false
	}
	star, ok := fn.Type.Params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	return ident.Name == "testing" && (sel.Sel.Name == "T" || sel.Sel.Name == "B")
}

// detectTableDriven looks for a range loop whose body calls Run.
func detectTableDriven(fn *ast.FuncDecl) bool {
	if fn.Body == nil {
		return false
	}

	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		rs, ok := n.(*ast.RangeStmt)
		if !ok {
			return !found
		}
		ast.Inspect(rs.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if sel, ok := call.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Run" {
				found = true
				return false
			}
			return true
		})
		return !found
	})
	return found
}
