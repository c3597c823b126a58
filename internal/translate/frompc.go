// SPDX-License-Identifier: MPL-2.0

package translate

import (
	"errors"
	"os"
	"strings"

	"cpsbridge/internal/libresolve"
	"cpsbridge/pkg/cpsfile"
	"cpsbridge/pkg/pcfile"
)

// ErrMissingName is returned when the flat description carries no Name
// attribute, leaving nothing to name the emitted component after.
var ErrMissingName = errors.New("package description has no Name attribute")

// FromPCOptions adjusts the flat→structured translation.
type FromPCOptions struct {
	// LibraryName overrides the logical library name, which otherwise
	// derives from the package Name.
	LibraryName string

	// Preferred is the artifact type tried first during resolution and
	// assumed when resolution fails. Zero value means shared.
	Preferred libresolve.ArtifactType

	// LibsToRequires converts remaining -l link libraries into
	// dependencies instead of keeping them as link flags.
	LibsToRequires bool

	// KeepLibs exempts link libraries from the LibsToRequires conversion.
	KeepLibs []string

	// ExtraSearchDirs are artifact search directories consulted in
	// addition to the -L directories found in the Libs attribute.
	ExtraSearchDirs []string
}

// FromPC translates a parsed flat package description into a
// single-component structured package.
func FromPC(f *pcfile.File, opts FromPCOptions) (*cpsfile.Package, error) {
	name := f.Name()
	if name == "" {
		return nil, ErrMissingName
	}
	if opts.Preferred == "" {
		opts.Preferred = libresolve.Shared
	}
	libName := opts.LibraryName
	if libName == "" {
		libName = name
	}

	libsTokens, err := f.Fields(pcfile.AttrLibs)
	if err != nil {
		return nil, err
	}
	cflagsTokens, err := f.Fields(pcfile.AttrCflags)
	if err != nil {
		return nil, err
	}

	link := splitLibsTokens(libsTokens)
	deps := f.Requires()

	searchDirs := append(existingDirs(link.searchDirs), opts.ExtraSearchDirs...)

	comp := cpsfile.Component{}
	result, found := libresolve.Resolve(libName, opts.Preferred, searchDirs)
	if found {
		comp.Type = componentType(result.Type)
		comp.Location = result.Path
	} else {
		// Bare assumption: the preferred type, with no resolved path.
		comp.Type = componentType(opts.Preferred)
	}

	// A component never links against itself, with or without lib prefix.
	libs := excludeSelf(link.libs, libName)

	if opts.LibsToRequires {
		keep := map[string]bool{}
		for _, k := range opts.KeepLibs {
			keep[k] = true
		}
		remaining := libs[:0:0]
		for _, lib := range libs {
			if keep[lib] {
				remaining = append(remaining, lib)
				continue
			}
			deps.Add(lib, "")
		}
		libs = remaining
	}

	comp.LinkFlags = rebuildLinkFlags(libsTokens, libs)
	comp.Includes, comp.CompileFlags = partitionCflags(cflagsTokens)
	comp.Requires = deps.Names()

	pkg := &cpsfile.Package{
		CpsVersion:        cpsfile.CpsVersion,
		Name:              name,
		Version:           f.Attribute(pcfile.AttrVersion),
		Description:       f.Attribute(pcfile.AttrDescription),
		Website:           f.Attribute(pcfile.AttrURL),
		Components:        map[string]cpsfile.Component{name: comp},
		DefaultComponents: []string{name},
	}
	if deps.Len() > 0 {
		pkg.Requires = map[string]cpsfile.Requirement{}
		for _, dep := range deps.Names() {
			pkg.Requires[dep] = cpsfile.Requirement{Version: deps.Requirement(dep).Version}
		}
	}
	return pkg, nil
}

// linkTokens is the Libs attribute split into its three populations.
type linkTokens struct {
	searchDirs []string // -L arguments, in order
	libs       []string // -l arguments, in order
}

func splitLibsTokens(tokens []string) linkTokens {
	var lt linkTokens
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "-L"):
			lt.searchDirs = append(lt.searchDirs, strings.TrimPrefix(tok, "-L"))
		case strings.HasPrefix(tok, "-l"):
			lt.libs = append(lt.libs, strings.TrimPrefix(tok, "-l"))
		}
	}
	return lt
}

// existingDirs filters the -L arguments down to directories that exist;
// only those participate in artifact resolution.
func existingDirs(dirs []string) []string {
	var out []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			out = append(out, dir)
		}
	}
	return out
}

// excludeSelf drops the component's own logical library name from the
// link-library set, matching with and without the conventional lib prefix.
func excludeSelf(libs []string, libName string) []string {
	bare := strings.TrimPrefix(libName, "lib")
	var out []string
	for _, lib := range libs {
		if lib == libName || lib == bare || lib == "lib"+bare {
			continue
		}
		out = append(out, lib)
	}
	return out
}

// rebuildLinkFlags reconstructs the Link-Flags sequence from the original
// Libs tokens. Tokens for -l libraries that were removed (self, converted
// to requires) are dropped; everything else keeps its relative order. When
// no link library remains at all, every -l and -L token is stripped — the
// search paths carry no meaning without libraries to search for.
func rebuildLinkFlags(tokens []string, libs []string) []string {
	kept := map[string]bool{}
	for _, lib := range libs {
		kept[lib] = true
	}

	var out []string
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "-l") && !kept[strings.TrimPrefix(tok, "-l")] {
			continue
		}
		if len(libs) == 0 && strings.HasPrefix(tok, "-L") {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// includeMarker prefixes compile tokens that name include directories.
const includeMarker = "-I"

// partitionCflags splits compile tokens into include directories (marker
// stripped) and remaining compile flags, preserving relative order within
// each partition.
func partitionCflags(tokens []string) (includes, flags []string) {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, includeMarker) && len(tok) > len(includeMarker) {
			includes = append(includes, strings.TrimPrefix(tok, includeMarker))
			continue
		}
		flags = append(flags, tok)
	}
	return includes, flags
}

func componentType(t libresolve.ArtifactType) cpsfile.ComponentType {
	if t == libresolve.Static {
		return cpsfile.TypeArchive
	}
	return cpsfile.TypeDylib
}
