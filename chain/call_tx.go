// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var _ UnsignedTransaction = &CallTx{}

// CallTx calls [To] with [Value] and [Data]. An empty [Data] is a plain
// value transfer.
type CallTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	To    common.Address `serialize:"true" json:"to"`
	Value uint64         `serialize:"true" json:"value"`
	Data  hexutil.Bytes  `serialize:"true" json:"data"`
}

func (c *CallTx) Execute(t *TransactionContext) error {
	if c.To == (common.Address{}) {
		return ErrZeroAddress
	}
	return Invoke(t.root(), c.To, c.Value, c.Data)
}

func (c *CallTx) Copy() UnsignedTransaction {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	return &CallTx{
		BaseTx: c.BaseTx.Copy(),
		To:     c.To,
		Value:  c.Value,
		Data:   data,
	}
}
