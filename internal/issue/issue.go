// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PackageNotFoundId Id = iota + 1
	FlatParseErrorId
	CpsParseErrorId
	OutputModeConflictId
	UnknownCompilerId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a cataloged fatal condition with rendered help text.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	packageNotFoundIssue = &Issue{
		id: PackageNotFoundId,
		mdMsg: `
# Package not found!

The package name could not be resolved to a .pc file.

## Things you can try:
- Check the spelling of the package name:
~~~
$ pkg-config --list-all | grep <name>
~~~

- Point PKG_CONFIG_PATH at the directory containing the .pc file:
~~~
$ PKG_CONFIG_PATH=/opt/mylib/lib/pkgconfig cpsbridge from-pc mylib
~~~

- Pass the .pc file path directly instead of a bare name:
~~~
$ cpsbridge from-pc /usr/lib/pkgconfig/zlib.pc
~~~`,
	}

	flatParseErrorIssue = &Issue{
		id: FlatParseErrorId,
		mdMsg: `
# Failed to parse the .pc file!

The flat package description could not be translated.

## Common issues:
- A value references an undefined variable, e.g. ` + "`${libdir}`" + ` with no
  ` + "`libdir=...`" + ` assignment above it
- Variable definitions that reference each other in a cycle
- Unbalanced quotes inside a Libs or Cflags value

## Things you can try:
- Check the variable name printed in the error message
- Variables must be assigned (` + "`name=value`" + `) before any attribute
  line (` + "`Libs: ...`" + `) references them`,
	}

	cpsParseErrorIssue = &Issue{
		id: CpsParseErrorId,
		mdMsg: `
# Failed to parse the CPS file!

The structured package specification is not valid.

## Common issues:
- Invalid JSON syntax (trailing commas, missing quotes)
- A component "Type" outside the known set (dylib, archive, interface,
  executable, module)
- "Components" entries that are not objects

## Things you can try:
- Check the field path printed in the error message
- Validate the JSON syntax with any JSON tool`,
	}

	outputModeConflictIssue = &Issue{
		id: OutputModeConflictId,
		mdMsg: `
# Conflicting output options!

A single output file can only hold one component, but the input
specification defines several.

## Things you can try:
- Use --output-dir to write one .pc file per component:
~~~
$ cpsbridge to-pc mylib.cps --output-dir ./pc
~~~

- Or translate a single-component specification with --output-file`,
	}

	unknownCompilerIssue = &Issue{
		id: UnknownCompilerId,
		mdMsg: `
# Unknown compiler!

The requested compiler has no feature mapping table.

## Supported compilers:
- **gcc** (default)
- **clang**
- **msvc**`,
	}

	issues = map[Id]*Issue{
		packageNotFoundIssue.Id():    packageNotFoundIssue,
		flatParseErrorIssue.Id():     flatParseErrorIssue,
		cpsParseErrorIssue.Id():      cpsParseErrorIssue,
		outputModeConflictIssue.Id(): outputModeConflictIssue,
		unknownCompilerIssue.Id():    unknownCompilerIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
