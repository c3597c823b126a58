// SPDX-License-Identifier: MPL-2.0

package cpsfile

// ComponentType identifies the artifact kind of a component. The emitters
// switch exhaustively over the known values; anything else routes to the
// warn-and-skip path, so the type deliberately admits arbitrary strings.
type ComponentType string

const (
	// TypeDylib is a shared library.
	TypeDylib ComponentType = "dylib"
	// TypeArchive is a static library.
	TypeArchive ComponentType = "archive"
	// TypeInterface is a header/flags-only component with no artifact.
	TypeInterface ComponentType = "interface"
	// TypeExecutable is a program; not translatable to the flat format.
	TypeExecutable ComponentType = "executable"
	// TypeModule is a plugin loaded at runtime; not translatable either.
	TypeModule ComponentType = "module"
)

// String returns the wire form of the component type.
func (t ComponentType) String() string { return string(t) }

// IsKnown reports whether t is one of the enumerated kinds.
func (t ComponentType) IsKnown() bool {
	switch t {
	case TypeDylib, TypeArchive, TypeInterface, TypeExecutable, TypeModule:
		return true
	default:
		return false
	}
}
