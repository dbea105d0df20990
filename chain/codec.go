// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/multisigvm/codec"
)

// Types are registered in a single place so their wire IDs never depend on
// file ordering.
func init() {
	codec.RegisterTypes(
		&CallTx{},
		&CreateTx{},
	)
	RegisterMethods(
		&SubmitTransaction{},
		&ConfirmTransaction{},
		&RevokeConfirmation{},
		&ExecuteTransaction{},
		&AddOwner{},
		&RemoveOwner{},
		&ReplaceOwner{},
		&ChangeRequirement{},
		&Withdraw{},
		&UpgradeTo{},
		&UpgradeToAndCall{},
		&TransferProxyOwnership{},
	)
	RegisterEvents(
		&Submission{},
		&Confirmation{},
		&Revocation{},
		&Execution{},
		&ExecutionFailure{},
		&OwnerAddition{},
		&OwnerRemoval{},
		&RequirementChange{},
		&Deposit{},
		&Withdrawal{},
		&Upgraded{},
		&ProxyOwnershipTransferred{},
		&FeatureInitialized{},
	)
}
