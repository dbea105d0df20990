// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var receiptCmd = &cobra.Command{
	Use:   "receipt <txID>",
	Short: "Prints the outcome of an issued transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		txID, err := ids.FromString(args[0])
		if err != nil {
			return err
		}
		r, err := newClient().Receipt(txID)
		if err != nil {
			return err
		}
		return printOutput(r, func() {
			if r.Success {
				color.Green("transaction %s applied at index %d with %d events", r.TxID, r.Index, len(r.Logs))
			} else {
				color.Red("transaction %s rejected: %s", r.TxID, r.Error)
			}
		})
	},
}
