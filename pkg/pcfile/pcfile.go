// SPDX-License-Identifier: MPL-2.0

package pcfile

import (
	"fmt"
	"os"

	"mvdan.cc/sh/v3/shell"
)

// Well-known attribute names.
const (
	AttrName        = "Name"
	AttrVersion     = "Version"
	AttrDescription = "Description"
	AttrURL         = "URL"
	AttrRequires    = "Requires"
	AttrLibs        = "Libs"
	AttrCflags      = "Cflags"
)

// File is a parsed flat package description.
//
// Variables hold the raw assignment values (last assignment wins);
// Attributes hold attribute values with all ${name} references already
// expanded. Both maps are immutable after Parse returns.
type File struct {
	// Path is the source file path, when known.
	Path string

	// Variables maps identifier to raw value, as assigned.
	Variables map[string]string

	// Attributes maps attribute name to its fully expanded value.
	Attributes map[string]string
}

// Parse reads and parses a flat package description from the given path.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package file at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// Attribute returns the expanded value of the named attribute, or "" when
// the attribute is absent.
func (f *File) Attribute(name string) string {
	return f.Attributes[name]
}

// Name returns the package's Name attribute.
func (f *File) Name() string { return f.Attribute(AttrName) }

// Fields splits the named attribute into flag tokens using shell quoting
// rules, so a quoted path with an embedded space stays one token.
func (f *File) Fields(name string) ([]string, error) {
	value := f.Attribute(name)
	if value == "" {
		return nil, nil
	}
	fields, err := shell.Fields(value, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s value %q: %w", name, value, err)
	}
	return fields, nil
}
