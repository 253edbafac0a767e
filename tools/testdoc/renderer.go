package main

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"
)

// commandPrefixes maps test name prefixes in cmd/remark to the command
// they cover.
var commandPrefixes = map[string]string{
	"Root":       "remark",
	"ResolveCmd": "remark resolve",
	"DoctorCmd":  "remark doctor",
	"RecentCmd":  "remark recent",
	"Config":     "remark config",
	"ConfigShow": "remark config",
	"ConfigInit": "remark config",
	"Completion": "remark completion",
}

// RenderMarkdown writes the test documentation as markdown.
func RenderMarkdown(w io.Writer, packages []TestPackage) error {
	return render(w, packages, time.Now())
}

func render(w io.Writer, packages []TestPackage, now time.Time) error {
	sections := make(map[string][]TestFunc)
	for _, pkg := range packages {
		for _, test := range pkg.Tests {
			area := sectionFor(pkg.Name, test.Name)
			sections[area] = append(sections[area], test)
		}
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# Test Documentation\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Area | Tests | Scenarios |\n")
	fmt.Fprintf(&b, "|------|-------|-----------|\n")
	total, scenarios := 0, 0
	for _, name := range names {
		tests := sections[name]
		n := countScenarios(tests)
		fmt.Fprintf(&b, "| [%s](#%s) | %d | %d |\n", name, toAnchor(name), len(tests), n)
		total += len(tests)
		scenarios += n
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | **%d** |\n\n", total, scenarios)

	for _, name := range names {
		renderSection(&b, name, sections[name])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderSection(b *strings.Builder, name string, tests []TestFunc) {
	fmt.Fprintf(b, "## %s\n\n", name)
	fmt.Fprintf(b, "| Test | Scenario | Expected |\n")
	fmt.Fprintf(b, "|------|----------|----------|\n")
	for _, t := range tests {
		scenario, expected := t.Scenario, t.Expected
		if scenario == "" {
			scenario = t.Summary
		}
		if scenario == "" {
			scenario = "_No documentation_"
		}
		if t.IsTable {
			scenario += " (table)"
		}
		fmt.Fprintf(b, "| `%s` | %s | %s |\n", t.Name, cell(scenario), cell(expected))
	}
	b.WriteString("\n")
}

// sectionFor groups command tests by command and everything else by
// package.
func sectionFor(pkg, testName string) string {
	if pkg != "cmd/remark" {
		return pkg
	}
	prefix, _, _ := strings.Cut(strings.TrimPrefix(testName, "Test"), "_")
	if cmd, ok := commandPrefixes[prefix]; ok {
		return cmd
	}
	return pkg
}

func countScenarios(tests []TestFunc) int {
	n := 0
	for _, t := range tests {
		if t.Scenario != "" {
			n++
		}
	}
	return n
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var anchorStrip = regexp.MustCompile(`[^a-z0-9-]`)

// toAnchor converts a heading to its GitHub markdown anchor.
func toAnchor(heading string) string {
	return anchorStrip.ReplaceAllString(strings.ToLower(strings.ReplaceAll(heading, " ", "-")), "")
}
