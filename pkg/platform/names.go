// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// Kernel name constants for feature-table lookups and runtime.GOOS
// comparisons. Centralizes the string literals to avoid scattered magic
// strings.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	FreeBSD = "freebsd"
	Windows = "windows"
)

// Compiler name constants for feature-table lookups.
const (
	GCC   = "gcc"
	Clang = "clang"
	MSVC  = "msvc"
)

// Kernels lists the supported kernel identifiers in declaration order.
// The first entry is the documented default for non-host targets.
func Kernels() []string {
	return []string{Linux, Darwin, FreeBSD, Windows}
}

// Compilers lists the supported compiler identifiers in declaration order.
// The first entry is the default compiler.
func Compilers() []string {
	return []string{GCC, Clang, MSVC}
}

// HostKernel maps the running OS onto a supported kernel identifier.
// Unrecognized hosts fall back to Linux, the default target.
func HostKernel() string {
	switch runtime.GOOS {
	case Linux, Darwin, FreeBSD, Windows:
		return runtime.GOOS
	default:
		return Linux
	}
}

// IsKernel reports whether name is a supported kernel identifier.
func IsKernel(name string) bool {
	for _, k := range Kernels() {
		if k == name {
			return true
		}
	}
	return false
}

// IsCompiler reports whether name is a supported compiler identifier.
func IsCompiler(name string) bool {
	for _, c := range Compilers() {
		if c == name {
			return true
		}
	}
	return false
}
