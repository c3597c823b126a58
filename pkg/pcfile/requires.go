// SPDX-License-Identifier: MPL-2.0

package pcfile

import (
	"regexp"
	"strings"
)

type (
	// Requirement annotates a dependency with an optional required version.
	// The zero value means "any version".
	Requirement struct {
		Version string
	}

	// DependencyMap is an ordered set of dependency names, each with an
	// optional version annotation. Entries are unique by name; the first
	// occurrence fixes the position, but a later occurrence may still
	// supply the version annotation if none was recorded yet.
	DependencyMap struct {
		order  []string
		byName map[string]Requirement
	}
)

// NewDependencyMap creates an empty DependencyMap.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{byName: map[string]Requirement{}}
}

// Add records a dependency. Duplicate names keep their original position;
// version annotations are set once, at the occurrence that specifies one.
func (m *DependencyMap) Add(name, version string) {
	existing, ok := m.byName[name]
	if !ok {
		m.order = append(m.order, name)
		m.byName[name] = Requirement{Version: version}
		return
	}
	if existing.Version == "" && version != "" {
		m.byName[name] = Requirement{Version: version}
	}
}

// Has reports whether name is already recorded.
func (m *DependencyMap) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Names returns the dependency names in insertion order.
func (m *DependencyMap) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Requirement returns the annotation recorded for name.
func (m *DependencyMap) Requirement(name string) Requirement {
	return m.byName[name]
}

// Len returns the number of recorded dependencies.
func (m *DependencyMap) Len() int {
	return len(m.order)
}

// versionOpRe normalizes a ">=" version operator (with optional surrounding
// whitespace) to a bare "=". "At least version X" and "exactly version X"
// are deliberately recorded identically; callers needing strict lower-bound
// semantics must treat this as a known limitation.
var versionOpRe = regexp.MustCompile(`\s*>?=\s*`)

// ParseRequires parses a Requires attribute value into a DependencyMap.
// Tokens are whitespace separated (commas are treated as whitespace), each
// optionally of the form name=version.
func ParseRequires(value string) *DependencyMap {
	deps := NewDependencyMap()

	normalized := strings.ReplaceAll(value, ",", " ")
	normalized = versionOpRe.ReplaceAllString(normalized, "=")

	for _, token := range strings.Fields(normalized) {
		name, version, _ := strings.Cut(token, "=")
		if name == "" {
			continue
		}
		deps.Add(name, version)
	}
	return deps
}

// Requires parses the file's Requires attribute, which may be absent.
func (f *File) Requires() *DependencyMap {
	return ParseRequires(f.Attribute(AttrRequires))
}
