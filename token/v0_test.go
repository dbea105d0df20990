// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
)

func TestV0Mintable(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	token := e.deploy(alice, V0Code, nil)

	tt := []struct {
		from   common.Address
		m      chain.Method
		err    error
		events []string
	}{
		{from: alice, m: &Mint{To: bob, Amount: 10}, err: chain.ErrFeatureNotInitialized},
		{from: alice, m: &InitializeMintable{}, err: chain.ErrZeroAddress},
		{from: alice, m: &InitializeMintable{Minter: alice}, events: []string{"MinterAdded", "FeatureInitialized"}},
		{from: alice, m: &InitializeMintable{Minter: bob}, err: chain.ErrFeatureInitialized},
		{from: bob, m: &Mint{To: bob, Amount: 10}, err: ErrNotMinter},
		{from: alice, m: &Mint{To: bob, Amount: 100}, events: []string{"Transfer"}},
		{from: alice, m: &Pause{}, err: chain.ErrUnknownMethod},
	}
	for i, tv := range tt {
		logs, err := e.call(tv.from, token, tv.m)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if tv.err == nil {
			expectEvents(t, logs, tv.events...)
		}
	}

	db := chain.StorageOf(e.db, token)
	supply, err := TotalSupply(db)
	if err != nil {
		t.Fatal(err)
	}
	if supply != 100 || e.balance(token, bob) != 100 {
		t.Fatalf("unexpected supply %d / balance %d", supply, e.balance(token, bob))
	}
	ok, err := IsMinter(db, alice)
	if err != nil || !ok {
		t.Fatalf("alice is not a minter (%v)", err)
	}
}

func TestV0TransferAllowance(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	token := e.deploy(alice, V0Code, nil)
	e.mustCall(alice, token, &InitializeMintable{Minter: alice})
	e.mustCall(alice, token, &Mint{To: alice, Amount: 100})

	tt := []struct {
		from      common.Address
		m         chain.Method
		err       error
		alice     uint64
		carol     uint64
		allowance uint64
	}{
		{from: alice, m: &Transfer{To: bob, Value: 101}, err: ErrInsufficientFunds, alice: 100},
		{from: alice, m: &Transfer{Value: 1}, err: chain.ErrZeroAddress, alice: 100},
		{from: alice, m: &Transfer{To: carol, Value: 10}, alice: 90, carol: 10},
		{from: alice, m: &Approve{Spender: bob, Value: 20}, alice: 90, carol: 10, allowance: 20},
		{from: bob, m: &TransferFrom{From: alice, To: carol, Value: 21}, err: ErrInsufficientAllowance, alice: 90, carol: 10, allowance: 20},
		{from: bob, m: &TransferFrom{From: alice, To: carol, Value: 15}, alice: 75, carol: 25, allowance: 5},
		{from: alice, m: &IncreaseAllowance{Spender: bob, Value: 100}, alice: 75, carol: 25, allowance: 105},
		{from: bob, m: &TransferFrom{From: alice, To: carol, Value: 80}, err: ErrInsufficientFunds, alice: 75, carol: 25, allowance: 105},
		{from: alice, m: &DecreaseAllowance{Spender: bob, Value: 106}, err: ErrAllowanceUnderflow, alice: 75, carol: 25, allowance: 105},
		{from: alice, m: &DecreaseAllowance{Spender: bob, Value: 100}, alice: 75, carol: 25, allowance: 5},
	}
	for i, tv := range tt {
		_, err := e.call(tv.from, token, tv.m)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		allowance, err := Allowance(chain.StorageOf(e.db, token), alice, bob)
		if err != nil {
			t.Fatal(err)
		}
		if a, c := e.balance(token, alice), e.balance(token, carol); a != tv.alice || c != tv.carol || allowance != tv.allowance {
			t.Fatalf("#%d: expected %d/%d/%d, got %d/%d/%d", i, tv.alice, tv.carol, tv.allowance, a, c, allowance)
		}
	}
}
