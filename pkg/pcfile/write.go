// SPDX-License-Identifier: MPL-2.0

package pcfile

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// PrefixToken is the placeholder substituted with a caller-supplied prefix
// string when a document is rendered.
const PrefixToken = "@prefix@"

// Document is a flat package description to be written out. Flag values are
// kept as token sequences until rendering so quoting can be applied per
// token.
type Document struct {
	Name        string
	Description string
	Version     string
	URL         string

	// Requires holds dependency tokens (name or name=version).
	Requires []string

	// Libs and Cflags hold link and compile flag tokens, in order.
	Libs   []string
	Cflags []string
}

// Render produces the textual form of the document. Empty fields are pruned
// entirely, and every PrefixToken occurrence is replaced with prefix.
// Tokens containing whitespace are shell quoted so they survive re-parsing.
func (d *Document) Render(prefix string) string {
	var b strings.Builder

	writeLine := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeLine(AttrName, d.Name)
	writeLine(AttrDescription, d.Description)
	writeLine(AttrVersion, d.Version)
	writeLine(AttrURL, d.URL)
	writeLine(AttrRequires, strings.Join(d.Requires, " "))
	writeLine(AttrLibs, joinTokens(d.Libs))
	writeLine(AttrCflags, joinTokens(d.Cflags))

	return strings.ReplaceAll(b.String(), PrefixToken, prefix)
}

// WriteFile renders the document and writes it to path.
func (d *Document) WriteFile(path, prefix string) error {
	if err := os.WriteFile(path, []byte(d.Render(prefix)), 0o644); err != nil {
		return fmt.Errorf("failed to write package file at %s: %w", path, err)
	}
	return nil
}

func joinTokens(tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		q, err := syntax.Quote(tok, syntax.LangPOSIX)
		if err != nil {
			// Unquotable tokens (embedded NUL) are passed through as-is.
			q = tok
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
