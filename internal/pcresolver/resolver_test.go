// SPDX-License-Identifier: MPL-2.0

package pcresolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"cpsbridge/internal/pcresolver"
)

// fakeTool writes a stub pkg-config that prints a fixed path for "zlib" and
// exits 1 for everything else.
func fakeTool(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake resolver script requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "pkg-config")
	script := `#!/bin/sh
if [ "$1" = "--path" ] && [ "$2" = "zlib" ]; then
  echo /usr/lib/pkgconfig/zlib.pc
  exit 0
fi
exit 1
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_Found(t *testing.T) {
	t.Parallel()

	r := pcresolver.New(fakeTool(t))
	got, err := r.Resolve(context.Background(), "zlib")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "/usr/lib/pkgconfig/zlib.pc" {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	r := pcresolver.New(fakeTool(t))
	_, err := r.Resolve(context.Background(), "no-such-package")
	if !errors.Is(err, pcresolver.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}

	var nf *pcresolver.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nf.Name != "no-such-package" {
		t.Errorf("NotFoundError.Name = %q", nf.Name)
	}
}

func TestResolve_MissingBinary(t *testing.T) {
	t.Parallel()

	r := pcresolver.New(filepath.Join(t.TempDir(), "does-not-exist"))
	_, err := r.Resolve(context.Background(), "zlib")
	if !errors.Is(err, pcresolver.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}
