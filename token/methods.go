// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ethereum/go-ethereum/common"
)

type Transfer struct {
	To    common.Address `serialize:"true" json:"to"`
	Value uint64         `serialize:"true" json:"value"`
}

func (*Transfer) Name() string { return "transfer" }

type Approve struct {
	Spender common.Address `serialize:"true" json:"spender"`
	Value   uint64         `serialize:"true" json:"value"`
}

func (*Approve) Name() string { return "approve" }

type TransferFrom struct {
	From  common.Address `serialize:"true" json:"from"`
	To    common.Address `serialize:"true" json:"to"`
	Value uint64         `serialize:"true" json:"value"`
}

func (*TransferFrom) Name() string { return "transferFrom" }

type IncreaseAllowance struct {
	Spender common.Address `serialize:"true" json:"spender"`
	Value   uint64         `serialize:"true" json:"value"`
}

func (*IncreaseAllowance) Name() string { return "increaseAllowance" }

type DecreaseAllowance struct {
	Spender common.Address `serialize:"true" json:"spender"`
	Value   uint64         `serialize:"true" json:"value"`
}

func (*DecreaseAllowance) Name() string { return "decreaseAllowance" }

type InitializeMintable struct {
	Minter common.Address `serialize:"true" json:"minter"`
}

func (*InitializeMintable) Name() string { return "initializeMintable" }

type Mint struct {
	To     common.Address `serialize:"true" json:"to"`
	Amount uint64         `serialize:"true" json:"amount"`
}

func (*Mint) Name() string { return "mint" }

type InitializePausable struct {
	Pauser common.Address `serialize:"true" json:"pauser"`
}

func (*InitializePausable) Name() string { return "initializePausable" }

type Pause struct{}

func (*Pause) Name() string { return "pause" }

type Unpause struct{}

func (*Unpause) Name() string { return "unpause" }
