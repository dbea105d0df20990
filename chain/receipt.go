// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// Receipt records the outcome of a submitted transaction.
type Receipt struct {
	TxID    ids.ID         `serialize:"true" json:"txId"`
	Index   uint64         `serialize:"true" json:"index"`
	Sender  common.Address `serialize:"true" json:"sender"`
	Success bool           `serialize:"true" json:"success"`
	Error   string         `serialize:"true" json:"error,omitempty"`

	// Created is set for accepted CreateTx.
	Created common.Address `serialize:"true" json:"created"`
	Logs    []*Log         `serialize:"true" json:"logs"`
}

func GetReceipt(db database.KeyValueReader, txID ids.ID) (*Receipt, bool, error) {
	r := new(Receipt)
	ok, err := GetObject(db, PrefixReceiptKey(txID), r)
	if err != nil || !ok {
		return nil, ok, err
	}
	return r, true, nil
}

func PutReceipt(db database.KeyValueWriter, r *Receipt) error {
	return PutObject(db, PrefixReceiptKey(r.TxID), r)
}

// Apply runs [tx] as a single state transition on top of [db]. A rejected
// transaction leaves [db] untouched and its receipt is not persisted.
func Apply(g *Genesis, db database.Database, codes Codebook, tx *Transaction) (*Receipt, error) {
	layer := versiondb.New(db)
	r, err := apply(g, layer, codes, tx)
	if err != nil {
		layer.Abort()
		return r, err
	}
	return r, layer.Commit()
}

func apply(g *Genesis, layer database.Database, codes Codebook, tx *Transaction) (*Receipt, error) {
	index, err := GetTransitionCount(layer)
	if err != nil {
		return nil, err
	}
	start, err := GetLogCount(layer)
	if err != nil {
		return nil, err
	}
	r := &Receipt{
		TxID:   tx.ID(),
		Index:  index,
		Sender: tx.Sender(),
		Logs:   []*Log{},
	}
	if err := tx.Execute(g, layer, codes, index); err != nil {
		r.Error = err.Error()
		return r, err
	}
	if ctx, ok := tx.UnsignedTransaction.(*CreateTx); ok {
		r.Created = ctx.ContractAddress(tx.Sender())
	}
	logs, err := GetLogs(layer, &LogFilter{From: start})
	if err != nil {
		return r, err
	}
	r.Success = true
	r.Logs = logs
	if err := PutReceipt(layer, r); err != nil {
		return r, err
	}
	return r, PutTransitionCount(layer, index+1)
}
