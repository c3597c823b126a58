// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for the translator.
//
// ActionableError carries operation/resource context plus fix suggestions,
// and the Issue catalog holds longer, markdown-rendered help for the fatal
// conditions a user can actually do something about (package not found,
// malformed flat file, invalid CPS input, conflicting output options).
package issue
