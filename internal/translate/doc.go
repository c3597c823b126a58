// SPDX-License-Identifier: MPL-2.0

// Package translate holds the two translation pipelines: FromPC builds a
// structured CPS package out of a parsed flat (.pc) description, and ToPC
// regenerates flat documents from a CPS package using per-compiler and
// per-kernel feature mapping tables.
//
// Both pipelines are stateless and synchronous. Fatal conditions are
// limited to argument-contract violations; per-component problems (unknown
// feature, unsupported kind, ignored Link-Requires) are logged as warnings
// and the offending contribution is dropped so one bad component never
// aborts translation of its siblings.
package translate
