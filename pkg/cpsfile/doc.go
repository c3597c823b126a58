// SPDX-License-Identifier: MPL-2.0

// Package cpsfile reads and writes Common Package Specification (CPS)
// documents, the structured, versioned package-metadata interchange format.
//
// Reading unifies the JSON document with an embedded CUE schema, so shape
// errors surface with a path to the offending field. The schema checks only
// what translation requires; semantic checks such as the component Type
// being a supported kind are left to the emitters, which warn and skip
// rather than fail.
package cpsfile
