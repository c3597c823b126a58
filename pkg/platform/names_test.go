// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestIsKernel(t *testing.T) {
	t.Parallel()

	for _, k := range Kernels() {
		if !IsKernel(k) {
			t.Errorf("IsKernel(%q) = false, want true", k)
		}
	}
	if IsKernel("plan9") {
		t.Error(`IsKernel("plan9") = true, want false`)
	}
}

func TestIsCompiler(t *testing.T) {
	t.Parallel()

	for _, c := range Compilers() {
		if !IsCompiler(c) {
			t.Errorf("IsCompiler(%q) = false, want true", c)
		}
	}
	if IsCompiler("tcc") {
		t.Error(`IsCompiler("tcc") = true, want false`)
	}
}

func TestHostKernel(t *testing.T) {
	t.Parallel()

	if !IsKernel(HostKernel()) {
		t.Errorf("HostKernel() = %q, not a supported kernel", HostKernel())
	}
}

func TestIsWindowsReservedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"CON", true},
		{"con", true},
		{"aux.pc", true},
		{"COM1", true},
		{"zlib", false},
		{"console", false},
		{"COM10", false},
	}
	for _, tt := range tests {
		if got := IsWindowsReservedName(tt.name); got != tt.want {
			t.Errorf("IsWindowsReservedName(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}
