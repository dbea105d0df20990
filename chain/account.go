// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
)

type Account struct {
	Balance uint64 `serialize:"true" json:"balance"`
	Nonce   uint64 `serialize:"true" json:"nonce"`

	// Code is the codebook entry that runs when the account is called. It is
	// empty for externally owned accounts.
	Code string `serialize:"true" json:"code,omitempty"`
}

// GetAccount returns an empty account for an address that was never touched.
func GetAccount(db database.KeyValueReader, addr common.Address) (*Account, error) {
	a := new(Account)
	if _, err := GetObject(db, PrefixAccountKey(addr), a); err != nil {
		return nil, err
	}
	return a, nil
}

func PutAccount(db database.KeyValueWriter, addr common.Address, a *Account) error {
	return PutObject(db, PrefixAccountKey(addr), a)
}

func GetBalance(db database.KeyValueReader, addr common.Address) (uint64, error) {
	a, err := GetAccount(db, addr)
	if err != nil {
		return 0, err
	}
	return a.Balance, nil
}

func ModifyBalance(db database.Database, addr common.Address, add bool, change uint64) (uint64, error) {
	a, err := GetAccount(db, addr)
	if err != nil {
		return 0, err
	}
	var (
		n     uint64
		xflow error
	)
	if add {
		n, xflow = smath.Add64(a.Balance, change)
	} else {
		n, xflow = smath.Sub64(a.Balance, change)
	}
	if xflow != nil {
		sentinel := ErrInsufficientBalance
		if add {
			sentinel = ErrBalanceOverflow
		}
		return 0, fmt.Errorf("%w: bal=%d, addr=%v, change=%d", sentinel, a.Balance, addr, change)
	}
	a.Balance = n
	return n, PutAccount(db, addr, a)
}

// Transfer moves native value between two accounts.
func Transfer(db database.Database, from common.Address, to common.Address, value uint64) error {
	if value == 0 || from == to {
		return nil
	}
	if _, err := ModifyBalance(db, from, false, value); err != nil {
		return err
	}
	_, err := ModifyBalance(db, to, true, value)
	return err
}

// IncrementNonce bumps the nonce of [addr] once its transaction was admitted.
func IncrementNonce(db database.Database, addr common.Address) error {
	a, err := GetAccount(db, addr)
	if err != nil {
		return err
	}
	a.Nonce++
	return PutAccount(db, addr, a)
}
