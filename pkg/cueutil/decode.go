// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type (
	// Option adjusts schema decoding.
	Option func(*options)

	options struct {
		filename string
	}
)

// WithFilename attaches a source filename to the document being decoded.
// The name appears in every error message produced by the decode.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// Decode unifies a user document with the root definition of an embedded
// schema and decodes the result into T.
//
// schema is the embedded CUE schema source; data is the user document (CUE
// or JSON — JSON documents are syntactically valid CUE); rootPath names the
// schema definition to unify against (e.g. "#Package", "#Config").
func Decode[T any](schema string, data []byte, rootPath string, opts ...Option) (*T, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(rootPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", rootPath, root.Err())
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if doc.Err() != nil {
		return nil, FormatError(doc.Err(), filename)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &result, nil
}
