// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ethereum/go-ethereum/common"
)

// TransferEvent is emitted on transfers and mints. Mints come from the zero
// address.
type TransferEvent struct {
	From  common.Address `serialize:"true" json:"from"`
	To    common.Address `serialize:"true" json:"to"`
	Value uint64         `serialize:"true" json:"value"`
}

func (*TransferEvent) Name() string { return "Transfer" }

type Approval struct {
	Owner   common.Address `serialize:"true" json:"owner"`
	Spender common.Address `serialize:"true" json:"spender"`
	Value   uint64         `serialize:"true" json:"value"`
}

func (*Approval) Name() string { return "Approval" }

type MinterAdded struct {
	Account common.Address `serialize:"true" json:"account"`
}

func (*MinterAdded) Name() string { return "MinterAdded" }

type PauserAdded struct {
	Account common.Address `serialize:"true" json:"account"`
}

func (*PauserAdded) Name() string { return "PauserAdded" }

type Paused struct {
	Account common.Address `serialize:"true" json:"account"`
}

func (*Paused) Name() string { return "Paused" }

type Unpaused struct {
	Account common.Address `serialize:"true" json:"account"`
}

func (*Unpaused) Name() string { return "Unpaused" }
