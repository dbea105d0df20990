// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ava-labs/multisigvm/chain"
)

func init() {
	chain.RegisterMethods(
		&Transfer{},
		&Approve{},
		&TransferFrom{},
		&IncreaseAllowance{},
		&DecreaseAllowance{},
		&InitializeMintable{},
		&Mint{},
		&InitializePausable{},
		&Pause{},
		&Unpause{},
	)
	chain.RegisterEvents(
		&TransferEvent{},
		&Approval{},
		&MinterAdded{},
		&PauserAdded{},
		&Paused{},
		&Unpaused{},
	)
}
