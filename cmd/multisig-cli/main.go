// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "multisig-cli" implements multisigvm governance operations.
package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/multisigvm/cmd/multisig-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "multisig-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
