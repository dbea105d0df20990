// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/inconshreveable/log15"
)

var _ UnsignedTransaction = &CreateTx{}

// CreateTx deploys the codebook entry [Code] at an address derived from the
// sender and its nonce.
type CreateTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Code  string        `serialize:"true" json:"code"`
	Value uint64        `serialize:"true" json:"value"`
	Args  hexutil.Bytes `serialize:"true" json:"args"`
}

// ContractAddress is where the transaction deploys when sent by [sender].
func (c *CreateTx) ContractAddress(sender common.Address) common.Address {
	return crypto.CreateAddress(sender, c.Nonce)
}

func (c *CreateTx) Execute(t *TransactionContext) error {
	addr := c.ContractAddress(t.Sender)
	if err := Create(t.root(), c.Code, addr, c.Value, c.Args); err != nil {
		return err
	}
	log.Debug("deployed contract", "code", c.Code, "address", addr, "sender", t.Sender)
	return nil
}

func (c *CreateTx) Copy() UnsignedTransaction {
	args := make([]byte, len(c.Args))
	copy(args, c.Args)
	return &CreateTx{
		BaseTx: c.BaseTx.Copy(),
		Code:   c.Code,
		Value:  c.Value,
		Args:   args,
	}
}
