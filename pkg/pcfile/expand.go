// SPDX-License-Identifier: MPL-2.0

package pcfile

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrUndefinedVariable is the sentinel error wrapped by UndefinedVariableError.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrExpansionCycle is the sentinel error wrapped by ExpansionCycleError.
	ErrExpansionCycle = errors.New("variable expansion cycle")

	// referenceRe matches a single ${name} variable reference.
	referenceRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.]*)\}`)
)

type (
	// UndefinedVariableError is returned when a value references a variable
	// that was never assigned.
	UndefinedVariableError struct {
		Name string
	}

	// ExpansionCycleError is returned when variable definitions reference
	// each other in a cycle, so expansion can never reach a fixed point.
	ExpansionCycleError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable ${%s}", e.Name)
}

// Unwrap returns ErrUndefinedVariable so callers can use errors.Is.
func (e *UndefinedVariableError) Unwrap() error { return ErrUndefinedVariable }

// Error implements the error interface.
func (e *ExpansionCycleError) Error() string {
	return fmt.Sprintf("variable expansion cycle while expanding %q", e.Value)
}

// Unwrap returns ErrExpansionCycle so callers can use errors.Is.
func (e *ExpansionCycleError) Unwrap() error { return ErrExpansionCycle }

// maxExpansionPasses bounds recursive substitution. Each pass substitutes
// every reference in the value once; a legitimate chain of N definitions
// resolves in N passes, so hitting the bound means mutually recursive
// definitions.
const maxExpansionPasses = 64

// Expand recursively substitutes ${name} references in value against vars
// until a fixed point is reached. A value with no references is returned
// unchanged, so expansion is idempotent.
//
// Referencing an undefined variable is an error, never an empty string.
// Mutually recursive definitions are detected and reported instead of
// looping forever.
func Expand(value string, vars map[string]string) (string, error) {
	current := value
	for pass := 0; pass < maxExpansionPasses; pass++ {
		var missing *UndefinedVariableError
		replaced := false

		next := referenceRe.ReplaceAllStringFunc(current, func(ref string) string {
			name := referenceRe.FindStringSubmatch(ref)[1]
			v, ok := vars[name]
			if !ok {
				if missing == nil {
					missing = &UndefinedVariableError{Name: name}
				}
				return ref
			}
			replaced = true
			return v
		})

		if missing != nil {
			return "", missing
		}
		if !replaced {
			return next, nil
		}
		current = next
	}
	return "", &ExpansionCycleError{Value: value}
}
