// SPDX-License-Identifier: MPL-2.0

package translate

import (
	"regexp"
	"strings"

	"cpsbridge/pkg/platform"
)

// Feature mapping tables. These are pure, process-wide constants: loaded
// once, never mutated. Keys are the identifiers from pkg/platform.

// gnuStdFlags maps language-standard feature names to GCC/Clang flags.
var gnuStdFlags = map[string]string{
	"c89":   "--std=c89",
	"c99":   "--std=c99",
	"c11":   "--std=c11",
	"c17":   "--std=c17",
	"c++11": "--std=c++11",
	"c++14": "--std=c++14",
	"c++17": "--std=c++17",
	"c++20": "--std=c++20",
	"c++23": "--std=c++23",
}

// msvcStdFlags maps language-standard feature names to MSVC flags. MSVC
// only exposes switches for the standards it actually supports.
var msvcStdFlags = map[string]string{
	"c11":   "/std:c11",
	"c17":   "/std:c17",
	"c++14": "/std:c++14",
	"c++17": "/std:c++17",
	"c++20": "/std:c++20",
	"c++23": "/std:c++latest",
}

// stdFlags selects the language-standard table per compiler.
var stdFlags = map[string]map[string]string{
	platform.GCC:   gnuStdFlags,
	platform.Clang: gnuStdFlags,
	platform.MSVC:  msvcStdFlags,
}

// definePrefixes maps a compiler to its define/undefine flag prefixes.
var definePrefixes = map[string][2]string{
	platform.GCC:   {"-D", "-U"},
	platform.Clang: {"-D", "-U"},
	platform.MSVC:  {"/D", "/U"},
}

// NegationMarker prefixes a definition that should be undefined rather
// than defined.
const NegationMarker = "!"

// warningForm is one recognized warning-policy feature shape. A compiler
// absent from formats cannot express the form; the feature is then dropped
// with a warning like any other unknown feature.
type warningForm struct {
	pattern *regexp.Regexp
	// formats maps compiler to an expansion template. {class} is the
	// warning class, {code} the specific error code when the form
	// captures one.
	formats map[string]string
}

// warningForms is matched in order; first match wins.
var warningForms = []warningForm{
	{
		// Specific warning promoted to a specific error code.
		pattern: regexp.MustCompile(`^warning:([A-Za-z0-9+_=-]+):error:([A-Za-z0-9]+)$`),
		formats: map[string]string{
			platform.GCC:   "-Werror={class}",
			platform.Clang: "-Werror={class}",
			platform.MSVC:  "/we{code}",
		},
	},
	{
		// Warning class promoted to error.
		pattern: regexp.MustCompile(`^warning:([A-Za-z0-9+_=-]+):error$`),
		formats: map[string]string{
			platform.GCC:   "-Werror={class}",
			platform.Clang: "-Werror={class}",
			platform.MSVC:  "/WX",
		},
	},
	{
		// Plain warning class.
		pattern: regexp.MustCompile(`^warning:([A-Za-z0-9+_=-]+)$`),
		formats: map[string]string{
			platform.GCC:   "-W{class}",
			platform.Clang: "-W{class}",
			platform.MSVC:  "/W{class}",
		},
	},
	{
		// Suppressed promotion: keep warning, stop treating it as error.
		pattern: regexp.MustCompile(`^no-warning:([A-Za-z0-9+_=-]+):error$`),
		formats: map[string]string{
			platform.GCC:   "-Wno-error={class}",
			platform.Clang: "-Wno-error={class}",
		},
	},
	{
		// Suppressed warning class.
		pattern: regexp.MustCompile(`^no-warning:([A-Za-z0-9+_=-]+)$`),
		formats: map[string]string{
			platform.GCC:   "-Wno-{class}",
			platform.Clang: "-Wno-{class}",
			platform.MSVC:  "/wd{class}",
		},
	},
}

// linkFeatureFlags maps kernel → link feature → flag expansion. An empty
// expansion is a recognized feature that needs no flags on that kernel.
var linkFeatureFlags = map[string]map[string][]string{
	platform.Linux:   {"threads": {"-lpthread"}},
	platform.FreeBSD: {"threads": {"-lpthread"}},
	platform.Darwin:  {"threads": {"-lpthread"}},
	platform.Windows: {"threads": {}}, // threading lives in the system runtime
}

// ExpandCompileFeature maps an abstract compile feature to concrete flags
// for the given compiler. The second return value is false when the
// feature is not recognized for that compiler.
func ExpandCompileFeature(compiler, feature string) ([]string, bool) {
	if flag, ok := stdFlags[compiler][feature]; ok {
		return []string{flag}, true
	}
	for _, form := range warningForms {
		m := form.pattern.FindStringSubmatch(feature)
		if m == nil {
			continue
		}
		format, ok := form.formats[compiler]
		if !ok {
			return nil, false
		}
		code := ""
		if len(m) > 2 {
			code = m[2]
		}
		expansion := strings.NewReplacer("{class}", m[1], "{code}", code).Replace(format)
		return strings.Fields(expansion), true
	}
	return nil, false
}

// ExpandLinkFeature maps an abstract link feature to concrete flags for
// the given kernel. The second return value is false when the feature is
// not recognized for that kernel.
func ExpandLinkFeature(kernel, feature string) ([]string, bool) {
	flags, ok := linkFeatureFlags[kernel][feature]
	if !ok {
		return nil, false
	}
	return flags, true
}

// ExpandDefinition maps a preprocessor definition token to the compiler's
// define flag, or to its undefine flag when the token carries the negation
// marker ("!NDEBUG").
func ExpandDefinition(compiler, definition string) string {
	prefixes := definePrefixes[compiler]
	if name, negated := strings.CutPrefix(definition, NegationMarker); negated {
		return prefixes[1] + name
	}
	return prefixes[0] + definition
}
