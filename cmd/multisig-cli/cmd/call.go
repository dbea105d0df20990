// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var (
	callTo    string
	callValue uint64
)

func init() {
	callCmd.Flags().StringVar(
		&callTo,
		"to",
		"token",
		"destination: token, wallet or an address",
	)
	callCmd.Flags().Uint64Var(
		&callValue,
		"value",
		0,
		"native value sent along",
	)
}

var callCmd = &cobra.Command{
	Use:   "call <method> [params] [options]",
	Short: "Calls a contract directly from the configured key",
	Long: `
Calls a contract directly, without going through the wallet.

$ multisig-cli call transfer 0x...,number:5
$ multisig-cli call upgradeTo 0x... --to 0x...

`,
	RunE: callFunc,
}

func callFunc(cmd *cobra.Command, args []string) error {
	m, err := decodeInput(args)
	if err != nil {
		return err
	}
	to, err := resolveTarget(callTo)
	if err != nil {
		return err
	}
	_, err = issue(&chain.CallTx{
		BaseTx: &chain.BaseTx{},
		To:     to,
		Value:  callValue,
		Data:   chain.MustEncodeCall(m),
	})
	return err
}
