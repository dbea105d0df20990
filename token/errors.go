// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"errors"
)

var (
	ErrInsufficientFunds     = errors.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("transfer amount exceeds allowance")
	ErrAllowanceUnderflow    = errors.New("decreased allowance below zero")
	ErrSupplyOverflow        = errors.New("total supply overflow")
	ErrNotMinter             = errors.New("caller does not have the minter role")
	ErrNotPauser             = errors.New("caller does not have the pauser role")
	ErrPaused                = errors.New("paused")
	ErrNotPaused             = errors.New("not paused")
)
