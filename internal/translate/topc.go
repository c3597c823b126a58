// SPDX-License-Identifier: MPL-2.0

package translate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"cpsbridge/pkg/cpsfile"
	"cpsbridge/pkg/pcfile"
	"cpsbridge/pkg/platform"
)

// ToPCOptions adjusts the structured→flat translation.
type ToPCOptions struct {
	// Compiler selects the compile-feature and definition table. Zero
	// value means gcc.
	Compiler string

	// Kernel selects the link-feature table. Zero value means the host
	// kernel.
	Kernel string

	// Logger receives per-component warnings. Nil selects a default
	// stderr logger.
	Logger *log.Logger
}

// Output is one flat document produced from one component.
type Output struct {
	// Component is the component name the document was generated from.
	Component string

	// Document is the assembled flat description, ready to render.
	Document *pcfile.Document
}

// ToPC regenerates one flat document per translatable component of pkg.
//
// Components of an unsupported kind are skipped with a warning, never
// aborting their siblings; the returned slice holds only the components
// that produced output, ordered by component name.
func ToPC(pkg *cpsfile.Package, opts ToPCOptions) ([]Output, error) {
	if opts.Compiler == "" {
		opts.Compiler = platform.GCC
	}
	if opts.Kernel == "" {
		opts.Kernel = platform.HostKernel()
	}
	if !platform.IsCompiler(opts.Compiler) {
		return nil, fmt.Errorf("unknown compiler %q (supported: %s)",
			opts.Compiler, strings.Join(platform.Compilers(), ", "))
	}
	if !platform.IsKernel(opts.Kernel) {
		return nil, fmt.Errorf("unknown kernel %q (supported: %s)",
			opts.Kernel, strings.Join(platform.Kernels(), ", "))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cpsbridge"})
	}

	names := make([]string, 0, len(pkg.Components))
	for name := range pkg.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	var outputs []Output
	for _, name := range names {
		comp := pkg.Components[name]
		doc, ok := emitComponent(pkg, name, comp, opts, logger)
		if !ok {
			continue
		}
		outputs = append(outputs, Output{Component: name, Document: doc})
	}
	return outputs, nil
}

// emitComponent assembles one flat document. The second return value is
// false when the component's kind cannot be expressed in the flat format.
func emitComponent(pkg *cpsfile.Package, name string, comp cpsfile.Component, opts ToPCOptions, logger *log.Logger) (*pcfile.Document, bool) {
	var libs []string

	switch comp.Type {
	case cpsfile.TypeDylib, cpsfile.TypeArchive:
		if comp.Location != "" {
			// The resolved artifact path is the sole initial Libs value.
			libs = append(libs, comp.Location)
		}
	case cpsfile.TypeInterface:
		// No artifact; the component contributes flags and requires only.
	case cpsfile.TypeExecutable:
		logger.Warn("skipping component: executables cannot be described in the flat format",
			"component", name)
		return nil, false
	default:
		logger.Warn("skipping component: unsupported kind",
			"component", name, "type", comp.Type.String())
		return nil, false
	}

	if len(comp.LinkRequires) > 0 {
		logger.Warn("ignoring Link-Requires: not representable in the flat format",
			"component", name)
	}

	// Link flags assemble in fixed order: artifact path, declared link
	// libraries, unconditioned link flags, then link-feature expansions.
	for _, lib := range comp.LinkLibraries {
		libs = append(libs, "-l"+lib)
	}
	libs = append(libs, comp.LinkFlags...)
	for _, feature := range comp.LinkFeatures {
		flags, ok := ExpandLinkFeature(opts.Kernel, feature)
		if !ok {
			logger.Warn("dropping unknown link feature",
				"component", name, "feature", feature, "kernel", opts.Kernel)
			continue
		}
		libs = append(libs, flags...)
	}

	// Compile flags assemble in fixed order: unconditioned compile flags,
	// include directories, definitions, then compile-feature expansions.
	cflags := append([]string(nil), comp.CompileFlags...)
	for _, inc := range comp.Includes {
		cflags = append(cflags, includeMarker+inc)
	}
	for _, def := range comp.Definitions {
		cflags = append(cflags, ExpandDefinition(opts.Compiler, def))
	}
	for _, feature := range comp.CompileFeatures {
		flags, ok := ExpandCompileFeature(opts.Compiler, feature)
		if !ok {
			logger.Warn("dropping unknown compile feature",
				"component", name, "feature", feature, "compiler", opts.Compiler)
			continue
		}
		cflags = append(cflags, flags...)
	}

	return &pcfile.Document{
		Name:        name,
		Description: pkg.Description,
		Version:     pkg.Version,
		URL:         pkg.Website,
		Requires:    requiresTokens(pkg, comp.Requires),
		Libs:        libs,
		Cflags:      cflags,
	}, true
}

// requiresTokens de-qualifies component requirements to their bare
// component name (collisions across packages are not disambiguated) and
// reattaches the package-level version annotation when one exists.
func requiresTokens(pkg *cpsfile.Package, requires []string) []string {
	var out []string
	for _, req := range requires {
		bare := req
		if i := strings.LastIndex(req, ":"); i >= 0 {
			bare = req[i+1:]
			if bare == "" {
				// "pkg:" references a package's default component.
				bare = req[:i]
			}
		}
		if bare == "" {
			continue
		}
		if r, ok := pkg.Requires[bare]; ok && r.Version != "" {
			out = append(out, bare+" = "+r.Version)
			continue
		}
		out = append(out, bare)
	}
	return out
}
