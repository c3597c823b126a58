// SPDX-License-Identifier: MPL-2.0

// Package pcresolver maps a bare package name to its .pc file path by
// invoking the system pkg-config tool.
//
// The subprocess call hides behind the Resolver interface so translation
// code and tests can substitute a fake without spawning anything.
package pcresolver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is the sentinel error wrapped by NotFoundError.
var ErrNotFound = errors.New("package not found")

type (
	// Resolver resolves a logical package name to a .pc file path.
	Resolver interface {
		Resolve(ctx context.Context, name string) (string, error)
	}

	// NotFoundError is returned when the external tool cannot locate the
	// package. It is terminal; resolution is never retried.
	NotFoundError struct {
		Name string
	}

	execResolver struct {
		binary string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package %q not found", e.Name)
}

// Unwrap returns ErrNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DefaultBinary is the resolver executable used when none is configured.
const DefaultBinary = "pkg-config"

// New creates a Resolver that shells out to the given pkg-config binary.
// An empty binary selects DefaultBinary.
func New(binary string) Resolver {
	if binary == "" {
		binary = DefaultBinary
	}
	return &execResolver{binary: binary}
}

// Resolve invokes `<binary> --path <name>` synchronously. A non-zero exit
// or empty output is reported as NotFoundError.
func (r *execResolver) Resolve(ctx context.Context, name string) (string, error) {
	out, err := exec.CommandContext(ctx, r.binary, "--path", name).Output()
	if err != nil {
		return "", &NotFoundError{Name: name}
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}
