// SPDX-License-Identifier: MPL-2.0

// Package libresolve locates a library's on-disk artifact given its logical
// name and a set of search directories, and classifies the artifact as a
// shared or static library.
package libresolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ErrInvalidArtifactType is the sentinel error wrapped by InvalidArtifactTypeError.
var ErrInvalidArtifactType = errors.New("invalid artifact type")

type (
	// ArtifactType is the binary kind of a library artifact.
	ArtifactType string

	// InvalidArtifactTypeError is returned when a string does not name a
	// supported artifact type.
	InvalidArtifactTypeError struct {
		Value string
	}

	// Result is a successful resolution: the located path and the type it
	// matched under.
	Result struct {
		Path string
		Type ArtifactType
	}
)

const (
	// Shared is a dynamically linked library (.so, .so.N..., .dylib).
	Shared ArtifactType = "shared"
	// Static is a link-time archive (.a).
	Static ArtifactType = "static"
)

// Error implements the error interface.
func (e *InvalidArtifactTypeError) Error() string {
	return fmt.Sprintf("invalid artifact type %q (must be shared or static)", e.Value)
}

// Unwrap returns ErrInvalidArtifactType so callers can use errors.Is.
func (e *InvalidArtifactTypeError) Unwrap() error { return ErrInvalidArtifactType }

// String returns the wire form of the artifact type.
func (t ArtifactType) String() string { return string(t) }

// Validate returns an error if t is not a supported artifact type.
func (t ArtifactType) Validate() error {
	switch t {
	case Shared, Static:
		return nil
	default:
		return &InvalidArtifactTypeError{Value: string(t)}
	}
}

// ParseArtifactType parses a string into an ArtifactType.
func ParseArtifactType(value string) (ArtifactType, error) {
	t := ArtifactType(value)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// defaultOrder is the fixed fallback order when the preferred type misses.
var defaultOrder = []ArtifactType{Shared, Static}

// suffixPattern returns the filename-suffix pattern for an artifact type.
// Shared libraries match a trailing .so with an optional numeric version
// tail, or a trailing .dylib; static libraries match a trailing .a.
func suffixPattern(t ArtifactType) string {
	switch t {
	case Static:
		return `\.a`
	default:
		return `(\.so(\.\d+)*|\.dylib)`
	}
}

// namePattern builds the filename pattern for a logical library name under
// the given artifact type: an optional "lib" prefix, the name, and the
// type-specific suffix.
func namePattern(name string, t ArtifactType) *regexp.Regexp {
	return regexp.MustCompile(`^(lib)?` + regexp.QuoteMeta(name) + suffixPattern(t) + `$`)
}

// Resolve searches dirs for the artifact belonging to the logical library
// name. The preferred type is tried first, then the remaining supported
// types in default order. Within a type, every directory is scanned and the
// shortest matching filename wins — the unversioned, symlink-level name
// (libfoo.so) is never longer than a versioned sibling (libfoo.so.1.2.3).
// The first type with any match settles the result; matches are never
// merged across types.
//
// The second return value is false when no type yields a match; the caller
// must then fall back to the preferred type with no resolved path.
func Resolve(name string, preferred ArtifactType, dirs []string) (Result, bool) {
	for _, t := range typeOrder(preferred) {
		pattern := namePattern(name, t)

		var bestPath, bestFn string
		for _, dir := range dirs {
			entries, err := os.ReadDir(dir)
			if err != nil {
				// Unreadable directories are skipped, not fatal.
				continue
			}
			for _, entry := range entries {
				fn := entry.Name()
				if !pattern.MatchString(fn) {
					continue
				}
				if bestFn == "" || len(fn) < len(bestFn) {
					bestPath = filepath.Join(dir, fn)
					bestFn = fn
				}
			}
		}
		if bestPath != "" {
			return Result{Path: bestPath, Type: t}, true
		}
	}
	return Result{}, false
}

func typeOrder(preferred ArtifactType) []ArtifactType {
	order := []ArtifactType{preferred}
	for _, t := range defaultOrder {
		if t != preferred {
			order = append(order, t)
		}
	}
	return order
}
