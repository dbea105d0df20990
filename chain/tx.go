// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/multisigvm/codec"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

type unsignedEnvelope struct {
	UnsignedTransaction UnsignedTransaction `serialize:"true"`
}

// DigestHash is what the sender signs. It covers the transaction type, so a
// signature cannot be replayed as another kind of transaction.
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	b, err := codec.Marshal(&unsignedEnvelope{UnsignedTransaction: utx})
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(b), nil
}

func (t *Transaction) Init() error {
	if t.UnsignedTransaction == nil {
		return ErrInvalidObject
	}
	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digestHash = dh

	sender, err := DeriveAddress(t.digestHash, t.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	t.sender = sender

	stx, err := codec.Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	h := sha3.Sum256(t.bytes)
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	t.id = id
	t.size = uint64(len(t.bytes))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() common.Address { return t.sender }

// ParseTx decodes and initializes a signed transaction.
func ParseTx(b []byte) (*Transaction, error) {
	tx := new(Transaction)
	if _, err := codec.Unmarshal(b, tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidObject, err)
	}
	if err := tx.Init(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Execute checks the envelope against the sender account and runs the
// transaction on [db]. The caller owns rollback: an error leaves partial
// writes in [db].
func (t *Transaction) Execute(g *Genesis, db database.Database, codes Codebook, index uint64) error {
	if t.GetMagic() != g.Magic {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidMagic, g.Magic, t.GetMagic())
	}
	acct, err := GetAccount(db, t.sender)
	if err != nil {
		return err
	}
	if t.GetNonce() != acct.Nonce {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidNonce, acct.Nonce, t.GetNonce())
	}
	if err := IncrementNonce(db, t.sender); err != nil {
		return err
	}
	return t.UnsignedTransaction.Execute(&TransactionContext{
		Genesis:  g,
		Database: db,
		Codes:    codes,
		Index:    index,
		TxID:     t.id,
		Sender:   t.sender,
	})
}
