// SPDX-License-Identifier: MPL-2.0

package cpsfile

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalCanonical renders the package as formatted JSON with every object's
// keys sorted. The document is round-tripped through generic maps because
// encoding/json emits struct fields in declaration order but map keys
// sorted; sorted output keeps diffs stable across tool versions.
func (p *Package) MarshalCanonical() ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CPS document: %w", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to canonicalize CPS document: %w", err)
	}

	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode CPS document: %w", err)
	}
	return append(out, '\n'), nil
}

// Write emits the canonical form to w.
func (p *Package) Write(w io.Writer) error {
	data, err := p.MarshalCanonical()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write CPS document: %w", err)
	}
	return nil
}
