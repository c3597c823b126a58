// SPDX-License-Identifier: MPL-2.0

package translate_test

import (
	"io"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"cpsbridge/internal/translate"
	"cpsbridge/pkg/cpsfile"
	"cpsbridge/pkg/pcfile"
	"cpsbridge/pkg/platform"
)

func quietOpts(compiler, kernel string) translate.ToPCOptions {
	return translate.ToPCOptions{
		Compiler: compiler,
		Kernel:   kernel,
		Logger:   log.New(io.Discard),
	}
}

func TestToPC_EmitScenario(t *testing.T) {
	t.Parallel()

	pkg := &cpsfile.Package{
		CpsVersion: cpsfile.CpsVersion,
		Name:       "foo",
		Components: map[string]cpsfile.Component{
			"foo": {
				Type:            cpsfile.TypeDylib,
				Location:        "/usr/lib/libfoo.so",
				Includes:        []string{"/usr/include"},
				Requires:        []string{"bar"},
				CompileFeatures: []string{"c++17"},
				LinkFeatures:    []string{"threads"},
			},
		},
	}

	outputs, err := translate.ToPC(pkg, quietOpts(platform.GCC, platform.Linux))
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("ToPC() produced %d outputs, want 1", len(outputs))
	}
	doc := outputs[0].Document

	if !reflect.DeepEqual(doc.Libs, []string{"/usr/lib/libfoo.so", "-lpthread"}) {
		t.Errorf("Libs = %v, want [/usr/lib/libfoo.so -lpthread]", doc.Libs)
	}
	if !reflect.DeepEqual(doc.Cflags, []string{"-I/usr/include", "--std=c++17"}) {
		t.Errorf("Cflags = %v, want [-I/usr/include --std=c++17]", doc.Cflags)
	}
	if !reflect.DeepEqual(doc.Requires, []string{"bar"}) {
		t.Errorf("Requires = %v, want [bar]", doc.Requires)
	}

	rendered := doc.Render("/usr")
	for _, line := range []string{
		"Libs: /usr/lib/libfoo.so -lpthread",
		"Cflags: -I/usr/include --std=c++17",
		"Requires: bar",
	} {
		if !strings.Contains(rendered, line) {
			t.Errorf("rendered output missing %q:\n%s", line, rendered)
		}
	}
}

func TestToPC_FlagAssemblyOrder(t *testing.T) {
	t.Parallel()

	pkg := &cpsfile.Package{
		Name: "foo",
		Components: map[string]cpsfile.Component{
			"foo": {
				Type:            cpsfile.TypeArchive,
				Location:        "/usr/lib/libfoo.a",
				LinkLibraries:   []string{"z"},
				LinkFlags:       []string{"-Wl,--as-needed"},
				LinkFeatures:    []string{"threads"},
				CompileFlags:    []string{"-fno-exceptions"},
				Includes:        []string{"/usr/include/foo"},
				Definitions:     []string{"FOO_STATIC", "!FOO_SHARED"},
				CompileFeatures: []string{"c11"},
			},
		},
	}

	outputs, err := translate.ToPC(pkg, quietOpts(platform.GCC, platform.Linux))
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}
	doc := outputs[0].Document

	wantLibs := []string{"/usr/lib/libfoo.a", "-lz", "-Wl,--as-needed", "-lpthread"}
	if !reflect.DeepEqual(doc.Libs, wantLibs) {
		t.Errorf("Libs = %v, want %v", doc.Libs, wantLibs)
	}
	wantCflags := []string{"-fno-exceptions", "-I/usr/include/foo", "-DFOO_STATIC", "-UFOO_SHARED", "--std=c11"}
	if !reflect.DeepEqual(doc.Cflags, wantCflags) {
		t.Errorf("Cflags = %v, want %v", doc.Cflags, wantCflags)
	}
}

func TestToPC_UnsupportedKindSkipsOnlyThatComponent(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	opts := translate.ToPCOptions{
		Compiler: platform.GCC,
		Kernel:   platform.Linux,
		Logger:   log.New(&buf),
	}

	pkg := &cpsfile.Package{
		Name: "mixed",
		Components: map[string]cpsfile.Component{
			"tool":   {Type: cpsfile.TypeExecutable},
			"lib":    {Type: cpsfile.TypeDylib, Location: "/usr/lib/liblib.so"},
			"plugin": {Type: cpsfile.TypeModule},
			"hdrs":   {Type: cpsfile.TypeInterface, Includes: []string{"/usr/include"}},
		},
	}

	outputs, err := translate.ToPC(pkg, opts)
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}

	var names []string
	for _, out := range outputs {
		names = append(names, out.Component)
	}
	if !reflect.DeepEqual(names, []string{"hdrs", "lib"}) {
		t.Errorf("translated components = %v, want [hdrs lib]", names)
	}

	warnings := buf.String()
	if !strings.Contains(warnings, "tool") || !strings.Contains(warnings, "plugin") {
		t.Errorf("warnings do not identify skipped components:\n%s", warnings)
	}
}

func TestToPC_LinkRequiresIgnoredWithWarning(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	opts := translate.ToPCOptions{
		Compiler: platform.GCC,
		Kernel:   platform.Linux,
		Logger:   log.New(&buf),
	}

	pkg := &cpsfile.Package{
		Name: "foo",
		Components: map[string]cpsfile.Component{
			"foo": {Type: cpsfile.TypeInterface, LinkRequires: []string{"bar:baz"}},
		},
	}

	outputs, err := translate.ToPC(pkg, opts)
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("component with Link-Requires must still translate, got %d outputs", len(outputs))
	}
	if !strings.Contains(buf.String(), "Link-Requires") {
		t.Errorf("expected Link-Requires warning, got:\n%s", buf.String())
	}
}

func TestToPC_UnknownFeaturesDroppedWithWarning(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	opts := translate.ToPCOptions{
		Compiler: platform.GCC,
		Kernel:   platform.Linux,
		Logger:   log.New(&buf),
	}

	pkg := &cpsfile.Package{
		Name: "foo",
		Components: map[string]cpsfile.Component{
			"foo": {
				Type:            cpsfile.TypeInterface,
				CompileFeatures: []string{"rainbows", "c++17"},
				LinkFeatures:    []string{"fibers"},
			},
		},
	}

	outputs, err := translate.ToPC(pkg, opts)
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}
	doc := outputs[0].Document

	if !reflect.DeepEqual(doc.Cflags, []string{"--std=c++17"}) {
		t.Errorf("Cflags = %v, want only the known feature expansion", doc.Cflags)
	}
	if len(doc.Libs) != 0 {
		t.Errorf("Libs = %v, want empty", doc.Libs)
	}
	for _, feature := range []string{"rainbows", "fibers"} {
		if !strings.Contains(buf.String(), feature) {
			t.Errorf("missing warning for feature %q:\n%s", feature, buf.String())
		}
	}
}

func TestToPC_UnknownCompilerOrKernel(t *testing.T) {
	t.Parallel()

	pkg := &cpsfile.Package{Name: "x", Components: map[string]cpsfile.Component{}}

	if _, err := translate.ToPC(pkg, quietOpts("tcc", platform.Linux)); err == nil {
		t.Error("ToPC() with unknown compiler: expected error")
	}
	if _, err := translate.ToPC(pkg, quietOpts(platform.GCC, "plan9")); err == nil {
		t.Error("ToPC() with unknown kernel: expected error")
	}
}

func TestRoundTrip_InterfaceOnly(t *testing.T) {
	t.Parallel()

	original := `Name: foo
Requires: bar
Cflags: -I/usr/include/foo -DFOO_LITE
`
	f, err := pcfile.ParseBytes([]byte(original), "foo.pc")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	pkg, err := translate.FromPC(f, translate.FromPCOptions{})
	if err != nil {
		t.Fatalf("FromPC() error = %v", err)
	}
	outputs, err := translate.ToPC(pkg, quietOpts(platform.GCC, platform.Linux))
	if err != nil {
		t.Fatalf("ToPC() error = %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("ToPC() produced %d outputs, want 1", len(outputs))
	}

	back, err := pcfile.ParseBytes([]byte(outputs[0].Document.Render("")), "back.pc")
	if err != nil {
		t.Fatalf("ParseBytes(rendered) error = %v", err)
	}

	if back.Name() != f.Name() {
		t.Errorf("Name = %q, want %q", back.Name(), f.Name())
	}
	// Token order inside Cflags may differ; the content may not.
	gotFlags, err := back.Fields(pcfile.AttrCflags)
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}
	wantFlags, err := f.Fields(pcfile.AttrCflags)
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}
	sort.Strings(gotFlags)
	sort.Strings(wantFlags)
	if !reflect.DeepEqual(gotFlags, wantFlags) {
		t.Errorf("Cflags tokens = %v, want %v", gotFlags, wantFlags)
	}
	if got, want := back.Requires().Names(), f.Requires().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Requires = %v, want %v", got, want)
	}
}
