// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE schema-validation helpers.
//
// Both structured documents this tool reads — CPS package files and its own
// configuration — follow the same flow:
//
//  1. Compile the embedded schema
//  2. Compile the user document (JSON is valid CUE, so CPS files compile
//     directly) and unify it with the schema's root definition
//  3. Validate the unified value and decode it into a Go struct
//
// Errors carry the source filename and a JSON-style path to the offending
// field so diagnostics point at the exact value that failed.
package cueutil
