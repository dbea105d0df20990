// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Operation is a call proposed to a wallet.
type Operation struct {
	ID          uint64         `serialize:"true" json:"id"`
	Destination common.Address `serialize:"true" json:"destination"`
	Value       uint64         `serialize:"true" json:"value"`
	Data        hexutil.Bytes  `serialize:"true" json:"data"`
	Executed    bool           `serialize:"true" json:"executed"`

	// Failed is only set under FailurePolicyTerminal.
	Failed bool `serialize:"true" json:"failed"`
}

type confirmationList struct {
	Owners []common.Address `serialize:"true"`
}

func GetTransactionCount(db database.KeyValueReader) (uint64, error) {
	return GetUint64(db, PrefixKey(txCountPrefix, nil))
}

func GetTransaction(db database.KeyValueReader, id uint64) (*Operation, bool, error) {
	op := new(Operation)
	ok, err := GetObject(db, PrefixUint64Key(transactionPrefix, id), op)
	if err != nil || !ok {
		return nil, ok, err
	}
	return op, true, nil
}

func putTransaction(db database.KeyValueWriter, op *Operation) error {
	return PutObject(db, PrefixUint64Key(transactionPrefix, op.ID), op)
}

func mustGetTransaction(db database.KeyValueReader, id uint64) (*Operation, error) {
	op, ok, err := GetTransaction(db, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTransactionMissing, id)
	}
	return op, nil
}

// GetConfirmations returns the owners that confirmed [id] in confirmation
// order. The proposer always comes first.
func GetConfirmations(db database.KeyValueReader, id uint64) ([]common.Address, error) {
	l := new(confirmationList)
	if _, err := GetObject(db, PrefixUint64Key(confirmationsPrefix, id), l); err != nil {
		return nil, err
	}
	return l.Owners, nil
}

func putConfirmations(db database.KeyValueWriter, id uint64, owners []common.Address) error {
	return PutObject(db, PrefixUint64Key(confirmationsPrefix, id), &confirmationList{Owners: owners})
}

func GetConfirmationCount(db database.KeyValueReader, id uint64) (uint64, error) {
	confs, err := GetConfirmations(db, id)
	return uint64(len(confs)), err
}

// IsConfirmed reports whether [id] gathered at least the required number of
// confirmations.
func IsConfirmed(db database.KeyValueReader, id uint64) (bool, error) {
	count, err := GetConfirmationCount(db, id)
	if err != nil {
		return false, err
	}
	required, err := GetRequired(db)
	if err != nil {
		return false, err
	}
	return count >= required, nil
}

func IsExecuted(db database.KeyValueReader, id uint64) (bool, error) {
	op, err := mustGetTransaction(db, id)
	if err != nil {
		return false, err
	}
	return op.Executed, nil
}

// CountTransactions counts operations filtered by status.
func CountTransactions(db database.KeyValueReader, pending bool, executed bool) (uint64, error) {
	ids, err := transactionIDs(db, pending, executed)
	return uint64(len(ids)), err
}

// GetPendingTransactionIDs returns the ids of all operations not executed yet
// in ascending order.
func GetPendingTransactionIDs(db database.KeyValueReader) ([]uint64, error) {
	return transactionIDs(db, true, false)
}

func transactionIDs(db database.KeyValueReader, pending bool, executed bool) ([]uint64, error) {
	count, err := GetTransactionCount(db)
	if err != nil {
		return nil, err
	}
	ids := []uint64{}
	for id := uint64(0); id < count; id++ {
		op, err := mustGetTransaction(db, id)
		if err != nil {
			return nil, err
		}
		if (pending && !op.Executed) || (executed && op.Executed) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func submitTransaction(c *Context, m *SubmitTransaction) (uint64, error) {
	if err := onlyOwner(c); err != nil {
		return 0, err
	}
	if m.Destination == (common.Address{}) {
		return 0, ErrZeroAddress
	}
	id, err := GetTransactionCount(c.Storage)
	if err != nil {
		return 0, err
	}
	op := &Operation{
		ID:          id,
		Destination: m.Destination,
		Value:       m.Value,
		Data:        m.Data,
	}
	if err := putTransaction(c.Storage, op); err != nil {
		return 0, err
	}
	if err := PutUint64(c.Storage, PrefixKey(txCountPrefix, nil), id+1); err != nil {
		return 0, err
	}
	if err := c.Emit(&Submission{TransactionID: id, Proposer: c.Caller}); err != nil {
		return 0, err
	}
	return id, confirmTransaction(c, id)
}

func confirmTransaction(c *Context, id uint64) error {
	if err := onlyOwner(c); err != nil {
		return err
	}
	op, err := mustGetTransaction(c.Storage, id)
	if err != nil {
		return err
	}
	confs, err := GetConfirmations(c.Storage, id)
	if err != nil {
		return err
	}
	if indexOf(confs, c.Caller) >= 0 {
		return fmt.Errorf("%w: id=%d owner=%v", ErrAlreadyConfirmed, id, c.Caller)
	}
	if op.Executed {
		return fmt.Errorf("%w: %d", ErrAlreadyExecuted, id)
	}
	if err := putConfirmations(c.Storage, id, append(confs, c.Caller)); err != nil {
		return err
	}
	if err := c.Emit(&Confirmation{TransactionID: id, Owner: c.Caller}); err != nil {
		return err
	}
	return tryExecute(c, op)
}

func revokeConfirmation(c *Context, id uint64) error {
	op, err := mustGetTransaction(c.Storage, id)
	if err != nil {
		return err
	}
	confs, err := GetConfirmations(c.Storage, id)
	if err != nil {
		return err
	}
	i := indexOf(confs, c.Caller)
	if i < 0 {
		return fmt.Errorf("%w: id=%d owner=%v", ErrNotConfirmed, id, c.Caller)
	}
	if op.Executed {
		return fmt.Errorf("%w: %d", ErrAlreadyExecuted, id)
	}
	if err := putConfirmations(c.Storage, id, removeAt(confs, i)); err != nil {
		return err
	}
	return c.Emit(&Revocation{TransactionID: id, Owner: c.Caller})
}

// pruneConfirmations drops the confirmations [owner] holds on operations that
// are still pending.
func pruneConfirmations(db database.Database, owner common.Address) error {
	pending, err := GetPendingTransactionIDs(db)
	if err != nil {
		return err
	}
	for _, id := range pending {
		confs, err := GetConfirmations(db, id)
		if err != nil {
			return err
		}
		i := indexOf(confs, owner)
		if i < 0 {
			continue
		}
		if err := putConfirmations(db, id, removeAt(confs, i)); err != nil {
			return err
		}
	}
	return nil
}

func removeAt(addrs []common.Address, i int) []common.Address {
	out := make([]common.Address, 0, len(addrs)-1)
	out = append(out, addrs[:i]...)
	return append(out, addrs[i+1:]...)
}
