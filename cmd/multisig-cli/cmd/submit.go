// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var (
	submitTo    string
	submitValue uint64
)

func init() {
	submitCmd.Flags().StringVar(
		&submitTo,
		"to",
		"token",
		"destination: token, wallet or an address",
	)
	submitCmd.Flags().Uint64Var(
		&submitValue,
		"value",
		0,
		"native value the wallet sends along",
	)
}

var submitCmd = &cobra.Command{
	Use:   "submit <method> [params] [options]",
	Short: "Proposes a call from the wallet",
	Long: `
Proposes a call that the wallet makes once enough owners confirmed it.
The proposer confirms right away. Params are comma separated.

$ multisig-cli submit mint 0x...,number:100
$ multisig-cli submit upgradeToAndCall 0x...,initializePausable,0x...
$ multisig-cli submit addOwner 0x... --to wallet

`,
	RunE: submitFunc,
}

func submitFunc(cmd *cobra.Command, args []string) error {
	m, err := decodeInput(args)
	if err != nil {
		return err
	}
	to, err := resolveTarget(submitTo)
	if err != nil {
		return err
	}
	color.Cyan("submitting %s to %s", m.Name(), to)
	return callWallet(&chain.SubmitTransaction{
		Destination: to,
		Value:       submitValue,
		Data:        chain.MustEncodeCall(m),
	})
}
