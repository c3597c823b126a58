// SPDX-License-Identifier: MPL-2.0

package cpsfile

// CpsVersion is the specification version stamped on documents this tool
// writes.
const CpsVersion = "0.13.0"

type (
	// Package is a structured package specification document.
	Package struct {
		CpsVersion  string `json:"Cps-Version"`
		Name        string `json:"Name"`
		Version     string `json:"Version,omitempty"`
		Description string `json:"Description,omitempty"`
		Website     string `json:"Website,omitempty"`

		// Components maps component name to its descriptor.
		Components map[string]Component `json:"Components"`

		// DefaultComponents lists the components consumers get when they
		// depend on the package without naming a component.
		DefaultComponents []string `json:"Default-Components,omitempty"`

		// Requires maps package-level dependency name to its requirement.
		Requires map[string]Requirement `json:"Requires,omitempty"`
	}

	// Component describes one buildable or linkable unit.
	Component struct {
		Type     ComponentType `json:"Type"`
		Location string        `json:"Location,omitempty"`

		LinkLibraries []string `json:"Link-Libraries,omitempty"`
		LinkFlags     []string `json:"Link-Flags,omitempty"`
		LinkFeatures  []string `json:"Link-Features,omitempty"`

		// LinkRequires is accepted on input but not translated; the
		// structured→flat emitter warns and ignores it.
		LinkRequires []string `json:"Link-Requires,omitempty"`

		// Requires lists component-level dependency identifiers, possibly
		// qualified with a package-scope prefix ("pkg:component").
		Requires []string `json:"Requires,omitempty"`

		Includes        []string `json:"Includes,omitempty"`
		Definitions     []string `json:"Definitions,omitempty"`
		CompileFlags    []string `json:"Compile-Flags,omitempty"`
		CompileFeatures []string `json:"Compile-Features,omitempty"`
	}

	// Requirement annotates a package-level dependency. The zero value
	// means "any version".
	Requirement struct {
		Version string `json:"Version,omitempty"`
	}
)
