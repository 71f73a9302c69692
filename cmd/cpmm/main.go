// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "cpmm" serves and drives constant product liquidity pools.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/ava-labs/cpmm/cmd/cpmm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("cpmm failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
