// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "multisigvm" client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/storage"
	"github.com/ava-labs/multisigvm/vm"
)

// Client defines multisigvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)
	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)

	// Issues a signed transaction and returns its receipt once applied.
	IssueRawTx(d []byte) (ids.ID, *chain.Receipt, error)
	// Receipt returns the outcome of a previously issued transaction.
	Receipt(txID ids.ID) (*chain.Receipt, error)

	// Account returns the balance, nonce and code of an address.
	Account(addr common.Address) (*chain.Account, error)
	// Logs returns the events matching the filter.
	Logs(f chain.LogFilter) ([]*chain.Log, error)

	Wallet(addr common.Address) (*vm.WalletInfo, error)
	Transaction(wallet common.Address, id uint64) (*vm.TransactionInfo, error)
	TransactionCount(wallet common.Address, pending bool, executed bool) (uint64, error)

	Proxy(addr common.Address) (*vm.ProxyInfo, error)
	Feature(addr common.Address, k chain.FeatureKey) (*chain.FeatureFlag, error)
	Token(addr common.Address, owner common.Address, spender common.Address) (*vm.TokenInfo, error)

	// Storage dumps raw storage entries of an address.
	Storage(addr common.Address, start []byte, end []byte, limit int) (*storage.RangeResponse, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) IssueRawTx(d []byte) (ids.ID, *chain.Receipt, error) {
	resp := new(vm.IssueRawTxReply)
	if err := cli.req.SendRequest(
		"issueRawTx",
		&vm.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, nil, err
	}
	return resp.TxID, resp.Receipt, nil
}

func (cli *client) Receipt(txID ids.ID) (*chain.Receipt, error) {
	resp := new(vm.ReceiptReply)
	if err := cli.req.SendRequest(
		"receipt",
		&vm.ReceiptArgs{TxID: txID},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Receipt, nil
}

func (cli *client) Account(addr common.Address) (*chain.Account, error) {
	resp := new(vm.AccountReply)
	if err := cli.req.SendRequest(
		"account",
		&vm.AddressArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (cli *client) Logs(f chain.LogFilter) ([]*chain.Log, error) {
	resp := new(vm.LogsReply)
	if err := cli.req.SendRequest(
		"logs",
		&vm.LogsArgs{Filter: f},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

func (cli *client) Wallet(addr common.Address) (*vm.WalletInfo, error) {
	resp := new(vm.WalletReply)
	if err := cli.req.SendRequest(
		"wallet",
		&vm.AddressArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Wallet, nil
}

func (cli *client) Transaction(wallet common.Address, id uint64) (*vm.TransactionInfo, error) {
	resp := new(vm.TransactionReply)
	if err := cli.req.SendRequest(
		"transaction",
		&vm.TransactionArgs{Wallet: wallet, ID: id},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Info, nil
}

func (cli *client) TransactionCount(wallet common.Address, pending bool, executed bool) (uint64, error) {
	resp := new(vm.TransactionCountReply)
	if err := cli.req.SendRequest(
		"transactionCount",
		&vm.TransactionCountArgs{Wallet: wallet, Pending: pending, Executed: executed},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (cli *client) Proxy(addr common.Address) (*vm.ProxyInfo, error) {
	resp := new(vm.ProxyReply)
	if err := cli.req.SendRequest(
		"proxy",
		&vm.AddressArgs{Address: addr},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Proxy, nil
}

func (cli *client) Feature(addr common.Address, k chain.FeatureKey) (*chain.FeatureFlag, error) {
	resp := new(vm.FeatureReply)
	if err := cli.req.SendRequest(
		"feature",
		&vm.FeatureArgs{Address: addr, Feature: k},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Flag, nil
}

func (cli *client) Token(addr common.Address, owner common.Address, spender common.Address) (*vm.TokenInfo, error) {
	resp := new(vm.TokenReply)
	if err := cli.req.SendRequest(
		"token",
		&vm.TokenArgs{Address: addr, Owner: owner, Spender: spender},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Token, nil
}

func (cli *client) Storage(addr common.Address, start []byte, end []byte, limit int) (*storage.RangeResponse, error) {
	resp := new(vm.StorageReply)
	if err := cli.req.SendRequest(
		"storage",
		&vm.StorageArgs{Address: addr, Start: start, End: end, Limit: limit},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Range, nil
}

type Op struct {
	printLogs bool
	wallet    *common.Address
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to print the events of the transaction.
func WithLogs() OpOption {
	return func(op *Op) { op.printLogs = true }
}

// Non-nil to print the wallet state once the transaction applied.
func WithWalletInfo(wallet common.Address) OpOption {
	return func(op *Op) { op.wallet = &wallet }
}
