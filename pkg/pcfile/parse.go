// SPDX-License-Identifier: MPL-2.0

package pcfile

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

var (
	// assignmentRe matches variable assignment lines: identifier=value.
	assignmentRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)=(.*)$`)

	// attributeRe matches attribute lines: Attribute.Name: value.
	attributeRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)\s*:\s*(.*)$`)
)

// ParseBytes parses flat package description content from bytes.
//
// Lines are classified in order: a variable assignment, then an attribute
// line; the first pattern that matches wins. Lines matching neither (blank
// lines, comments, garbage) are ignored. Attribute values are expanded
// against the variables seen so far; referencing a variable that was never
// assigned is an error.
func ParseBytes(data []byte, path string) (*File, error) {
	f := &File{
		Path:       path,
		Variables:  map[string]string{},
		Attributes: map[string]string{},
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := assignmentRe.FindStringSubmatch(line); m != nil {
			// Last assignment wins.
			f.Variables[m[1]] = strings.TrimSpace(m[2])
			continue
		}

		if m := attributeRe.FindStringSubmatch(line); m != nil {
			expanded, err := Expand(strings.TrimSpace(m[2]), f.Variables)
			if err != nil {
				return nil, err
			}
			f.Attributes[m[1]] = expanded
			continue
		}
		// Unclassifiable lines are not an error.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return f, nil
}
