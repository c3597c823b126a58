// SPDX-License-Identifier: MPL-2.0

package cpsfile

import (
	_ "embed"
	"fmt"
	"os"

	"cpsbridge/pkg/cueutil"
)

//go:embed cps_schema.cue
var cpsSchema string

// Parse reads and parses a CPS document from the given path.
func Parse(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CPS file at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses CPS document content from bytes. The document is
// unified with the embedded schema before decoding, so malformed documents
// fail with a field path rather than a bare decode error.
func ParseBytes(data []byte, path string) (*Package, error) {
	pkg, err := cueutil.Decode[Package](cpsSchema, data, "#Package", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	if pkg.Components == nil {
		pkg.Components = map[string]Component{}
	}
	return pkg, nil
}
