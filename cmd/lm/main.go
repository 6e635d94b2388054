// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import (
	"os"

	"label-manager/cmd/cli"
	"label-manager/cmd/tui"
)

func main() {
	// Without arguments, open the interactive form; otherwise run the CLI.
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}
