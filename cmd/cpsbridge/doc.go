// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cpsbridge.
//
// This package implements the Cobra command hierarchy for the cpsbridge
// CLI: the root command, the from-pc and to-pc translation subcommands,
// and the config inspection subcommands.
package cmd
