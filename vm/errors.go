// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrNotInitialized = errors.New("vm not initialized")
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrInputIsNil     = errors.New("input is nil")
	ErrCorruption     = errors.New("corruption detected")
	ErrNotWallet      = errors.New("address is not a wallet")
	ErrNotProxy       = errors.New("address is not a proxy")
	ErrNoReceipt      = errors.New("receipt not found")
)
