// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/multisigvm/chain"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Reads wallet, transaction, token, proxy and account state",
}

func init() {
	getCmd.AddCommand(
		getWalletCmd,
		getTransactionCmd,
		getTokenCmd,
		getProxyCmd,
		getFeatureCmd,
		getAccountCmd,
		getStorageCmd,
	)

	getStorageCmd.Flags().StringVar(&storageStart, "start", "", "first key (hex)")
	getStorageCmd.Flags().StringVar(&storageEnd, "end", "", "exclusive end key (hex); defaults to every key prefixed by --start")
	getStorageCmd.Flags().IntVar(&storageLimit, "limit", 0, "maximum number of entries")
}

var (
	storageStart string
	storageEnd   string
	storageLimit int
)

var getWalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Prints owners, requirement and pending transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet, err := walletAddress()
		if err != nil {
			return err
		}
		w, err := newClient().Wallet(wallet)
		if err != nil {
			return err
		}
		return printOutput(w, func() {
			color.Cyan("wallet %s (balance=%d)", wallet, w.Balance)
			for i, o := range w.Owners {
				color.Cyan("  owner #%d: %s", i, o)
			}
			color.Cyan("required=%d policy=%s transactions=%d pending=%v",
				w.Required, w.FailurePolicy, w.TransactionCount, w.Pending)
		})
	},
}

var getTransactionCmd = &cobra.Command{
	Use:   "transaction <id>",
	Short: "Prints a wallet transaction and its confirmations",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args)
		if err != nil {
			return err
		}
		wallet, err := walletAddress()
		if err != nil {
			return err
		}
		info, err := newClient().Transaction(wallet, id)
		if err != nil {
			return err
		}
		return printOutput(info, func() {
			op := info.Transaction
			color.Cyan("transaction #%d -> %s (value=%d, data=%s)", op.ID, op.Destination, op.Value, op.Data)
			if m, err := chain.DecodeCall(op.Data); err == nil {
				color.Cyan("  method: %s", m.Name())
			}
			color.Cyan("  executed=%t failed=%t confirmed=%t", op.Executed, op.Failed, info.Confirmed)
			for _, o := range info.Confirmations {
				color.Cyan("  confirmed by %s", o)
			}
		})
	},
}

var getTokenCmd = &cobra.Command{
	Use:   "token [owner] [spender]",
	Short: "Prints supply, pause state and balances of the token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 2 {
			return fmt.Errorf("expected at most 2 arguments, got %d", len(args))
		}
		tkn, err := tokenAddress()
		if err != nil {
			return err
		}
		var owner, spender common.Address
		if len(args) > 0 {
			if owner, err = parseAddress(args[0]); err != nil {
				return err
			}
		} else if owner, err = walletAddress(); err != nil {
			return err
		}
		if len(args) > 1 {
			if spender, err = parseAddress(args[1]); err != nil {
				return err
			}
		}
		ti, err := newClient().Token(tkn, owner, spender)
		if err != nil {
			return err
		}
		return printOutput(ti, func() {
			color.Cyan("token %s: supply=%d paused=%t", tkn, ti.TotalSupply, ti.Paused)
			color.Cyan("  balance of %s: %d", owner, ti.Balance)
			if spender != (common.Address{}) {
				color.Cyan("  allowance for %s: %d", spender, ti.Allowance)
			}
		})
	},
}

var getProxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Prints the implementation and owner of the token proxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		tkn, err := tokenAddress()
		if err != nil {
			return err
		}
		p, err := newClient().Proxy(tkn)
		if err != nil {
			return err
		}
		return printOutput(p, func() {
			color.Cyan("proxy %s: implementation=%s owner=%s", tkn, p.Implementation, p.Owner)
		})
	},
}

var getFeatureCmd = &cobra.Command{
	Use:   "feature <name>",
	Short: "Prints whether a feature of the token was initialized",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		tkn, err := tokenAddress()
		if err != nil {
			return err
		}
		var k chain.FeatureKey
		if err := k.UnmarshalText([]byte(args[0])); err != nil {
			return err
		}
		f, err := newClient().Feature(tkn, k)
		if err != nil {
			return err
		}
		return printOutput(f, func() {
			color.Cyan("feature %s: initialized=%t initializer=%s", k, f.Initialized, f.Initializer)
		})
	},
}

var getAccountCmd = &cobra.Command{
	Use:   "account [address]",
	Short: "Prints balance, nonce and code of an address (defaults to the key)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var addr common.Address
		switch len(args) {
		case 0:
			priv, err := crypto.LoadECDSA(viper.GetString("private-key-file"))
			if err != nil {
				return err
			}
			addr = crypto.PubkeyToAddress(priv.PublicKey)
		case 1:
			var err error
			if addr, err = resolveTarget(args[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("expected at most 1 argument, got %d", len(args))
		}
		a, err := newClient().Account(addr)
		if err != nil {
			return err
		}
		return printOutput(a, func() {
			color.Cyan("Address=%s Balance=%d Nonce=%d Code=%q", addr, a.Balance, a.Nonce, a.Code)
		})
	},
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hexutil.Decode(s)
}

var getStorageCmd = &cobra.Command{
	Use:   "storage <target>",
	Short: "Dumps raw storage entries of wallet, token or an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		addr, err := resolveTarget(args[0])
		if err != nil {
			return err
		}
		start, err := decodeKey(storageStart)
		if err != nil {
			return err
		}
		end, err := decodeKey(storageEnd)
		if err != nil {
			return err
		}
		resp, err := newClient().Storage(addr, start, end, storageLimit)
		if err != nil {
			return err
		}
		return printOutput(resp, func() {
			for _, kv := range resp.KeyValues {
				color.Cyan("%s => %s", kv.Key, kv.Value)
			}
			if resp.More {
				color.Yellow("more entries after %s", resp.KeyValues[len(resp.KeyValues)-1].Key)
			}
		})
	},
}
