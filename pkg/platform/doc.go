// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the kernel and compiler identifiers the
// translator targets.
//
// The identifiers double as lookup keys for the feature mapping tables, so
// the string literals live here rather than being scattered across the
// emitters.
package platform
