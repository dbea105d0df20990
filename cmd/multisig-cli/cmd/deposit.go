// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/client"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Sends native value to the wallet",
	RunE:  depositFunc,
}

func depositFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	amount, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse amount %w", err)
	}
	wallet, err := walletAddress()
	if err != nil {
		return err
	}
	_, err = issue(&chain.CallTx{
		BaseTx: &chain.BaseTx{},
		To:     wallet,
		Value:  amount,
	}, client.WithWalletInfo(wallet))
	return err
}
