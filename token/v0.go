// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token implements the governed token ledger: an allowance-based
// token whose optional features are switched on once through the feature
// guard.
package token

import (
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/multisigvm/chain"
)

const V0Code = "token/v0"

var MintableFeature = chain.MustFeatureKey("mintable")

// V0 is a mintable token. It is meant to run behind a proxy.
type V0 struct{}

var _ chain.Contract = &V0{}

func (*V0) Construct(*chain.Context, []byte) error { return nil }

func (t *V0) Execute(c *chain.Context, payload []byte) error {
	m, err := chain.DecodeCall(payload)
	if err != nil {
		return err
	}
	return t.execute(c, m)
}

func (*V0) execute(c *chain.Context, m chain.Method) error {
	switch m := m.(type) {
	case *Transfer:
		return transfer(c, c.Caller, m.To, m.Value)
	case *Approve:
		return approve(c, c.Caller, m.Spender, m.Value)
	case *TransferFrom:
		return transferFrom(c, m.From, m.To, m.Value)
	case *IncreaseAllowance:
		cur, err := Allowance(c.Storage, c.Caller, m.Spender)
		if err != nil {
			return err
		}
		n, err := smath.Add64(cur, m.Value)
		if err != nil {
			return err
		}
		return approve(c, c.Caller, m.Spender, n)
	case *DecreaseAllowance:
		cur, err := Allowance(c.Storage, c.Caller, m.Spender)
		if err != nil {
			return err
		}
		if m.Value > cur {
			return ErrAllowanceUnderflow
		}
		return approve(c, c.Caller, m.Spender, cur-m.Value)
	case *InitializeMintable:
		return initializeMintable(c, m.Minter)
	case *Mint:
		return mint(c, m.To, m.Amount)
	default:
		return chain.UnknownMethodError(m)
	}
}

func transfer(c *chain.Context, from common.Address, to common.Address, value uint64) error {
	if from == (common.Address{}) || to == (common.Address{}) {
		return chain.ErrZeroAddress
	}
	fromBal, err := BalanceOf(c.Storage, from)
	if err != nil {
		return err
	}
	if value > fromBal {
		return fmt.Errorf("%w: balance=%d, value=%d", ErrInsufficientFunds, fromBal, value)
	}
	if err := chain.PutUint64(c.Storage, balanceKey(from), fromBal-value); err != nil {
		return err
	}
	toBal, err := BalanceOf(c.Storage, to)
	if err != nil {
		return err
	}
	if err := chain.PutUint64(c.Storage, balanceKey(to), toBal+value); err != nil {
		return err
	}
	return c.Emit(&TransferEvent{From: from, To: to, Value: value})
}

func approve(c *chain.Context, owner common.Address, spender common.Address, value uint64) error {
	if spender == (common.Address{}) {
		return chain.ErrZeroAddress
	}
	if err := chain.PutUint64(c.Storage, allowanceKey(owner, spender), value); err != nil {
		return err
	}
	return c.Emit(&Approval{Owner: owner, Spender: spender, Value: value})
}

func transferFrom(c *chain.Context, from common.Address, to common.Address, value uint64) error {
	allowed, err := Allowance(c.Storage, from, c.Caller)
	if err != nil {
		return err
	}
	if value > allowed {
		return fmt.Errorf("%w: allowance=%d, value=%d", ErrInsufficientAllowance, allowed, value)
	}
	if err := chain.PutUint64(c.Storage, allowanceKey(from, c.Caller), allowed-value); err != nil {
		return err
	}
	return transfer(c, from, to, value)
}

func initializeMintable(c *chain.Context, minter common.Address) error {
	if err := chain.OnlyNotInitialized(c.Storage, MintableFeature); err != nil {
		return err
	}
	if minter == (common.Address{}) {
		return chain.ErrZeroAddress
	}
	if err := chain.PutBool(c.Storage, chain.PrefixKey(minterPrefix, minter.Bytes()), true); err != nil {
		return err
	}
	if err := c.Emit(&MinterAdded{Account: minter}); err != nil {
		return err
	}
	log.Info("token mintable", "token", c.Self, "minter", minter)
	return chain.SetInitialized(c, MintableFeature, c.Caller)
}

func mint(c *chain.Context, to common.Address, amount uint64) error {
	if err := chain.OnlyInitialized(c.Storage, MintableFeature); err != nil {
		return err
	}
	ok, err := IsMinter(c.Storage, c.Caller)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotMinter, c.Caller)
	}
	if to == (common.Address{}) {
		return chain.ErrZeroAddress
	}
	supply, err := TotalSupply(c.Storage)
	if err != nil {
		return err
	}
	newSupply, err := smath.Add64(supply, amount)
	if err != nil {
		return ErrSupplyOverflow
	}
	if err := chain.PutUint64(c.Storage, chain.PrefixKey(supplyPrefix, nil), newSupply); err != nil {
		return err
	}
	bal, err := BalanceOf(c.Storage, to)
	if err != nil {
		return err
	}
	if err := chain.PutUint64(c.Storage, balanceKey(to), bal+amount); err != nil {
		return err
	}
	return c.Emit(&TransferEvent{To: to, Value: amount})
}
