// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "Lists the methods submit and call accept",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := chain.MethodNames()
		return printOutput(names, func() {
			for _, n := range names {
				color.Cyan("%s", n)
			}
		})
	},
}
