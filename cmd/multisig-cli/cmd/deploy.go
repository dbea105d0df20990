// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/codec"
)

var (
	deployOwners        string
	deployRequired      uint64
	deployFailurePolicy string
	deployValue         uint64
)

func init() {
	deployCmd.Flags().StringVar(
		&deployOwners,
		"owners",
		"",
		"comma separated owner addresses (wallet only)",
	)
	deployCmd.Flags().Uint64Var(
		&deployRequired,
		"required",
		1,
		"confirmations required to execute (wallet only)",
	)
	deployCmd.Flags().StringVar(
		&deployFailurePolicy,
		"failure-policy",
		chain.FailurePolicyRetry.String(),
		"what happens to a failed operation: retry or terminal (wallet only)",
	)
	deployCmd.Flags().Uint64Var(
		&deployValue,
		"value",
		0,
		"native value sent to the new contract",
	)
}

var deployCmd = &cobra.Command{
	Use:   "deploy <code> [options]",
	Short: "Deploys a wallet, proxy or token implementation",
	Long: `
Deploys one of the known codes: wallet, proxy, token/v0, token/v1.

$ multisig-cli deploy wallet --owners 0x...,0x... --required 2
$ multisig-cli deploy proxy

`,
	RunE: deployFunc,
}

func deployFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	utx := &chain.CreateTx{
		BaseTx: &chain.BaseTx{},
		Code:   args[0],
		Value:  deployValue,
	}
	if utx.Code == chain.WalletCode {
		owners, err := parseAddresses(deployOwners)
		if err != nil {
			return err
		}
		policy, err := chain.ParseFailurePolicy(deployFailurePolicy)
		if err != nil {
			return err
		}
		cfg := &chain.WalletConfig{
			Owners:        owners,
			Required:      deployRequired,
			FailurePolicy: policy,
		}
		if err := cfg.Verify(); err != nil {
			return err
		}
		if utx.Args, err = codec.Marshal(cfg); err != nil {
			return err
		}
	}

	r, err := issue(utx)
	if err != nil {
		return err
	}
	color.Cyan("%s deployed at %s", utx.Code, r.Created)
	return nil
}
