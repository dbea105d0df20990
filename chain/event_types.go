// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

type Submission struct {
	TransactionID uint64         `serialize:"true" json:"transactionId"`
	Proposer      common.Address `serialize:"true" json:"proposer"`
}

func (*Submission) Name() string { return "Submission" }

type Confirmation struct {
	TransactionID uint64         `serialize:"true" json:"transactionId"`
	Owner         common.Address `serialize:"true" json:"owner"`
}

func (*Confirmation) Name() string { return "Confirmation" }

type Revocation struct {
	TransactionID uint64         `serialize:"true" json:"transactionId"`
	Owner         common.Address `serialize:"true" json:"owner"`
}

func (*Revocation) Name() string { return "Revocation" }

type Execution struct {
	TransactionID uint64 `serialize:"true" json:"transactionId"`
}

func (*Execution) Name() string { return "Execution" }

type ExecutionFailure struct {
	TransactionID uint64 `serialize:"true" json:"transactionId"`
	Reason        string `serialize:"true" json:"reason"`
}

func (*ExecutionFailure) Name() string { return "ExecutionFailure" }

type OwnerAddition struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

func (*OwnerAddition) Name() string { return "OwnerAddition" }

type OwnerRemoval struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

func (*OwnerRemoval) Name() string { return "OwnerRemoval" }

type RequirementChange struct {
	Required uint64 `serialize:"true" json:"required"`
}

func (*RequirementChange) Name() string { return "RequirementChange" }

type Deposit struct {
	Sender common.Address `serialize:"true" json:"sender"`
	Value  uint64         `serialize:"true" json:"value"`
}

func (*Deposit) Name() string { return "Deposit" }

type Withdrawal struct {
	To    common.Address `serialize:"true" json:"to"`
	Value uint64         `serialize:"true" json:"value"`
}

func (*Withdrawal) Name() string { return "Withdrawal" }

type Upgraded struct {
	Implementation common.Address `serialize:"true" json:"implementation"`
}

func (*Upgraded) Name() string { return "Upgraded" }

type ProxyOwnershipTransferred struct {
	PreviousOwner common.Address `serialize:"true" json:"previousOwner"`
	NewOwner      common.Address `serialize:"true" json:"newOwner"`
}

func (*ProxyOwnershipTransferred) Name() string { return "ProxyOwnershipTransferred" }

type FeatureInitialized struct {
	Feature     FeatureKey     `serialize:"true" json:"feature"`
	Initializer common.Address `serialize:"true" json:"initializer"`
}

func (*FeatureInitialized) Name() string { return "FeatureInitialized" }
