// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <id>",
	Short: "Confirms a pending wallet transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return callWallet(&chain.ConfirmTransaction{ID: id})
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke <id>",
	Short: "Revokes a confirmation of a pending wallet transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return callWallet(&chain.RevokeConfirmation{ID: id})
	},
}

var executeCmd = &cobra.Command{
	Use:   "execute <id>",
	Short: "Retries a confirmed wallet transaction whose call failed",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return callWallet(&chain.ExecuteTransaction{ID: id})
	},
}
