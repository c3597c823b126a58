// SPDX-License-Identifier: MPL-2.0

// Command cpsbridge translates package descriptions between the flat
// pkg-config (.pc) format and the structured CPS JSON format.
package main

import cmd "cpsbridge/cmd/cpsbridge"

func main() {
	cmd.Execute()
}
