// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/client"
	// registers the token methods and events
	_ "github.com/ava-labs/multisigvm/token"
)

// issue signs [utx] with the configured key and applies it.
func issue(utx chain.UnsignedTransaction, opts ...client.OpOption) (*chain.Receipt, error) {
	priv, err := crypto.LoadECDSA(viper.GetString("private-key-file"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, client.WithLogs())
	return client.SignIssueTx(newClient(), utx, priv, opts...)
}

// callWallet sends [m] to the configured wallet.
func callWallet(m chain.Method) error {
	wallet, err := walletAddress()
	if err != nil {
		return err
	}
	_, err = issue(&chain.CallTx{
		BaseTx: &chain.BaseTx{},
		To:     wallet,
		Data:   chain.MustEncodeCall(m),
	}, client.WithWalletInfo(wallet))
	return err
}

// decodeInput builds a method from "<method> [params]" as in
// "transfer 0xabc...,number:5".
func decodeInput(args []string) (chain.Method, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("expected <method> [params], got %d arguments", len(args))
	}
	in := &chain.Input{Method: args[0]}
	if len(args) == 2 {
		in.Params = args[1]
	}
	return in.Decode()
}

func parseID(args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return strconv.ParseUint(args[0], 10, 64)
}

func parseAddresses(s string) ([]common.Address, error) {
	addrs := []common.Address{}
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		addr, err := parseAddress(a)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
