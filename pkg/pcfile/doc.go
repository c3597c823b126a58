// SPDX-License-Identifier: MPL-2.0

// Package pcfile reads and writes the flat pkg-config (.pc) package
// description format.
//
// A .pc document is line oriented: "name=value" lines define variables,
// "Key: value" lines define attributes, and anything else is ignored.
// Attribute values may reference variables as ${name}; references are
// expanded to a fixed point while parsing, so File.Attributes always holds
// fully expanded text. Variables keep their raw values and exist only as
// substitution input.
package pcfile
