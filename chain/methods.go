// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Wallet

type SubmitTransaction struct {
	Destination common.Address `serialize:"true" json:"destination"`
	Value       uint64         `serialize:"true" json:"value"`
	Data        hexutil.Bytes  `serialize:"true" json:"data"`
}

func (*SubmitTransaction) Name() string { return "submitTransaction" }

type ConfirmTransaction struct {
	ID uint64 `serialize:"true" json:"id"`
}

func (*ConfirmTransaction) Name() string { return "confirmTransaction" }

type RevokeConfirmation struct {
	ID uint64 `serialize:"true" json:"id"`
}

func (*RevokeConfirmation) Name() string { return "revokeConfirmation" }

type ExecuteTransaction struct {
	ID uint64 `serialize:"true" json:"id"`
}

func (*ExecuteTransaction) Name() string { return "executeTransaction" }

type AddOwner struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

func (*AddOwner) Name() string { return "addOwner" }

type RemoveOwner struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

func (*RemoveOwner) Name() string { return "removeOwner" }

type ReplaceOwner struct {
	Owner    common.Address `serialize:"true" json:"owner"`
	NewOwner common.Address `serialize:"true" json:"newOwner"`
}

func (*ReplaceOwner) Name() string { return "replaceOwner" }

type ChangeRequirement struct {
	Required uint64 `serialize:"true" json:"required"`
}

func (*ChangeRequirement) Name() string { return "changeRequirement" }

// Withdraw sends the whole native balance of the wallet to [To].
type Withdraw struct {
	To common.Address `serialize:"true" json:"to"`
}

func (*Withdraw) Name() string { return "withdraw" }

// Proxy

type UpgradeTo struct {
	Implementation common.Address `serialize:"true" json:"implementation"`
}

func (*UpgradeTo) Name() string { return "upgradeTo" }

type UpgradeToAndCall struct {
	Implementation common.Address `serialize:"true" json:"implementation"`
	Data           hexutil.Bytes  `serialize:"true" json:"data"`
}

func (*UpgradeToAndCall) Name() string { return "upgradeToAndCall" }

type TransferProxyOwnership struct {
	NewOwner common.Address `serialize:"true" json:"newOwner"`
}

func (*TransferProxyOwnership) Name() string { return "transferProxyOwnership" }
