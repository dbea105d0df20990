// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetMagic() uint64
	GetNonce() uint64
	SetMagic(uint64)
	SetNonce(uint64)

	Execute(*TransactionContext) error
}

type TransactionContext struct {
	Genesis  *Genesis
	Database database.Database
	Codes    Codebook
	Index    uint64
	TxID     ids.ID
	Sender   common.Address
}

// root is the frame of the sending account. Calls made from it are calls
// made by the sender.
func (t *TransactionContext) root() *Context {
	return &Context{
		Codes:   t.Codes,
		State:   t.Database,
		Storage: StorageOf(t.Database, t.Sender),
		Tx:      t.Index,
		Self:    t.Sender,
		Caller:  t.Sender,
	}
}
