// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/storage"
	"github.com/ava-labs/multisigvm/token"
)

// read runs [f] against the committed state under the read lock.
func (vm *VM) read(f func(state database.Database) error) error {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	if vm.s == nil {
		return ErrNotInitialized
	}
	return f(vm.s.State())
}

// storageOf returns the storage of [addr] when its code is one of [kinds].
func storageOf(state database.Database, addr common.Address, notKind error, kinds ...string) (database.Database, error) {
	a, err := chain.GetAccount(state, addr)
	if err != nil {
		return nil, err
	}
	if a.Code == "" {
		return nil, fmt.Errorf("%w: %v", chain.ErrNoCode, addr)
	}
	if len(kinds) == 0 {
		return chain.StorageOf(state, addr), nil
	}
	for _, k := range kinds {
		if a.Code == k {
			return chain.StorageOf(state, addr), nil
		}
	}
	return nil, fmt.Errorf("%w: %v runs %q", notKind, addr, a.Code)
}

func (vm *VM) Account(addr common.Address) (a *chain.Account, err error) {
	err = vm.read(func(state database.Database) error {
		a, err = chain.GetAccount(state, addr)
		return err
	})
	return a, err
}

// Logs caps the filter limit at MaxLogsPerQuery.
func (vm *VM) Logs(f chain.LogFilter) (logs []*chain.Log, err error) {
	if f.Limit <= 0 || f.Limit > vm.config.MaxLogsPerQuery {
		f.Limit = vm.config.MaxLogsPerQuery
	}
	err = vm.read(func(state database.Database) error {
		logs, err = chain.GetLogs(state, &f)
		return err
	})
	return logs, err
}

type WalletInfo struct {
	Owners           []common.Address    `serialize:"true" json:"owners"`
	Required         uint64              `serialize:"true" json:"required"`
	FailurePolicy    chain.FailurePolicy `serialize:"true" json:"failurePolicy"`
	TransactionCount uint64              `serialize:"true" json:"transactionCount"`
	Pending          []uint64            `serialize:"true" json:"pending"`
	Balance          uint64              `serialize:"true" json:"balance"`
}

func (vm *VM) Wallet(addr common.Address) (w *WalletInfo, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, addr, ErrNotWallet, chain.WalletCode)
		if err != nil {
			return err
		}
		w = new(WalletInfo)
		if w.Owners, err = chain.GetOwners(db); err != nil {
			return err
		}
		if w.Required, err = chain.GetRequired(db); err != nil {
			return err
		}
		if w.FailurePolicy, err = chain.GetFailurePolicy(db); err != nil {
			return err
		}
		if w.TransactionCount, err = chain.GetTransactionCount(db); err != nil {
			return err
		}
		if w.Pending, err = chain.GetPendingTransactionIDs(db); err != nil {
			return err
		}
		w.Balance, err = chain.GetBalance(state, addr)
		return err
	})
	return w, err
}

type TransactionInfo struct {
	Transaction   *chain.Operation `serialize:"true" json:"transaction"`
	Confirmations []common.Address `serialize:"true" json:"confirmations"`
	Confirmed     bool             `serialize:"true" json:"confirmed"`
}

func (vm *VM) Transaction(wallet common.Address, id uint64) (info *TransactionInfo, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, wallet, ErrNotWallet, chain.WalletCode)
		if err != nil {
			return err
		}
		op, ok, err := chain.GetTransaction(db, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %d", chain.ErrTransactionMissing, id)
		}
		info = &TransactionInfo{Transaction: op}
		if info.Confirmations, err = chain.GetConfirmations(db, id); err != nil {
			return err
		}
		info.Confirmed, err = chain.IsConfirmed(db, id)
		return err
	})
	return info, err
}

// TransactionCount counts the operations of [wallet] matching the flags.
func (vm *VM) TransactionCount(wallet common.Address, pending bool, executed bool) (n uint64, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, wallet, ErrNotWallet, chain.WalletCode)
		if err != nil {
			return err
		}
		n, err = chain.CountTransactions(db, pending, executed)
		return err
	})
	return n, err
}

type ProxyInfo struct {
	Implementation common.Address `serialize:"true" json:"implementation"`
	Owner          common.Address `serialize:"true" json:"owner"`
}

func (vm *VM) Proxy(addr common.Address) (p *ProxyInfo, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, addr, ErrNotProxy, chain.ProxyCode)
		if err != nil {
			return err
		}
		p = new(ProxyInfo)
		if p.Implementation, err = chain.Implementation(db); err != nil {
			return err
		}
		p.Owner, err = chain.ProxyOwner(db)
		return err
	})
	return p, err
}

func (vm *VM) Feature(addr common.Address, k chain.FeatureKey) (f *chain.FeatureFlag, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, addr, nil)
		if err != nil {
			return err
		}
		f, err = chain.GetFeatureFlag(db, k)
		return err
	})
	return f, err
}

type TokenInfo struct {
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
	Paused      bool   `serialize:"true" json:"paused"`
	Balance     uint64 `serialize:"true" json:"balance"`
	Allowance   uint64 `serialize:"true" json:"allowance"`
}

// Token reads the ledger kept at [addr], usually a proxy. [spender] may be
// zero to skip the allowance.
func (vm *VM) Token(addr common.Address, owner common.Address, spender common.Address) (ti *TokenInfo, err error) {
	err = vm.read(func(state database.Database) error {
		db, err := storageOf(state, addr, nil)
		if err != nil {
			return err
		}
		ti = new(TokenInfo)
		if ti.TotalSupply, err = token.TotalSupply(db); err != nil {
			return err
		}
		if ti.Paused, err = token.IsPaused(db); err != nil {
			return err
		}
		if ti.Balance, err = token.BalanceOf(db, owner); err != nil {
			return err
		}
		if spender != (common.Address{}) {
			ti.Allowance, err = token.Allowance(db, owner, spender)
		}
		return err
	})
	return ti, err
}

// Storage dumps raw storage entries of [addr] from [start] on. A non-empty
// [end] bounds the range (exclusive); otherwise it covers keys prefixed by
// [start].
func (vm *VM) Storage(addr common.Address, start []byte, end []byte, limit int) (resp *storage.RangeResponse, err error) {
	if limit <= 0 || limit > vm.config.MaxRangeLimit {
		limit = vm.config.MaxRangeLimit
	}
	opts := []storage.OpOption{storage.WithRangeLimit(limit)}
	if len(end) > 0 {
		opts = append(opts, storage.WithRangeEnd(end))
	}
	err = vm.read(func(state database.Database) error {
		resp, err = storage.Range(chain.StorageOf(state, addr), start, opts...)
		return err
	})
	return resp, err
}
