// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/codec"
)

// 0x0/ (accounts)
//   -> [address] => account
// 0x1/ (contract storage)
//   -> [address]
//     -> [contract key] => value
// 0x2/ (logs)
//   -> [index] => log
// 0x3/ (receipts)
//   -> [txID] => receipt
// 0x4/ (metadata)
//   -> [name] => value

const (
	accountPrefix  = 0x0
	storagePrefix  = 0x1
	logPrefix      = 0x2
	receiptPrefix  = 0x3
	metadataPrefix = 0x4

	// Delimiter separates a prefix byte from the rest of a key.
	Delimiter = '/'
)

var (
	logCountKey        = []byte("log_count")
	transitionCountKey = []byte("transition_count")
	genesisKey         = []byte("genesis")
)

// PrefixKey prepends [prefix] and the delimiter to [key]. Contracts use it to
// lay out their own storage.
func PrefixKey(prefix byte, key []byte) []byte {
	b := make([]byte, 2+len(key))
	b[0] = prefix
	b[1] = Delimiter
	copy(b[2:], key)
	return b
}

// PrefixUint64Key keys [v] big-endian so that iteration follows numeric order.
func PrefixUint64Key(prefix byte, v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return PrefixKey(prefix, b)
}

func PrefixAccountKey(addr common.Address) []byte {
	return PrefixKey(accountPrefix, addr.Bytes())
}

func PrefixStorageKey(addr common.Address) []byte {
	return PrefixKey(storagePrefix, addr.Bytes())
}

func PrefixLogKey(index uint64) []byte {
	return PrefixUint64Key(logPrefix, index)
}

func PrefixReceiptKey(txID ids.ID) []byte {
	return PrefixKey(receiptPrefix, txID[:])
}

func PrefixMetadataKey(name []byte) []byte {
	return PrefixKey(metadataPrefix, name)
}

// StorageOf returns the private storage of [addr] inside [state]. The
// prefix is never merged into a parent prefixdb, so a layer over [state]
// and [state] itself resolve the same keys.
func StorageOf(state database.Database, addr common.Address) database.Database {
	return prefixdb.NewNested(PrefixStorageKey(addr), state)
}

// GetObject decodes the value at [k] into [dst]. It reports false when the
// key is missing.
func GetObject(db database.KeyValueReader, k []byte, dst interface{}) (bool, error) {
	has, err := db.Has(k)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return false, err
	}
	if _, err := codec.Unmarshal(v, dst); err != nil {
		return false, err
	}
	return true, nil
}

func PutObject(db database.KeyValueWriter, k []byte, src interface{}) error {
	b, err := codec.Marshal(src)
	if err != nil {
		return err
	}
	return db.Put(k, b)
}

// GetUint64 returns 0 for a missing key.
func GetUint64(db database.KeyValueReader, k []byte) (uint64, error) {
	has, err := db.Has(k)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return 0, err
	}
	if len(v) != 8 {
		return 0, ErrInvalidObject
	}
	return binary.BigEndian.Uint64(v), nil
}

func PutUint64(db database.KeyValueWriter, k []byte, v uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return db.Put(k, b)
}

// GetAddress returns the zero address for a missing key.
func GetAddress(db database.KeyValueReader, k []byte) (common.Address, error) {
	has, err := db.Has(k)
	if err != nil {
		return common.Address{}, err
	}
	if !has {
		return common.Address{}, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return common.Address{}, err
	}
	if len(v) != common.AddressLength {
		return common.Address{}, ErrInvalidObject
	}
	return common.BytesToAddress(v), nil
}

func PutAddress(db database.KeyValueWriter, k []byte, addr common.Address) error {
	return db.Put(k, addr.Bytes())
}

func GetBool(db database.KeyValueReader, k []byte) (bool, error) {
	v, err := GetUint64(db, k)
	return v == 1, err
}

func PutBool(db database.KeyValueWriter, k []byte, b bool) error {
	v := uint64(0)
	if b {
		v = 1
	}
	return PutUint64(db, k, v)
}

func GetTransitionCount(db database.KeyValueReader) (uint64, error) {
	return GetUint64(db, PrefixMetadataKey(transitionCountKey))
}

func PutTransitionCount(db database.KeyValueWriter, count uint64) error {
	return PutUint64(db, PrefixMetadataKey(transitionCountKey), count)
}

// GetGenesis returns the genesis the state was initialized with, if any.
func GetGenesis(db database.KeyValueReader) (*Genesis, bool, error) {
	g := new(Genesis)
	ok, err := GetObject(db, PrefixMetadataKey(genesisKey), g)
	if err != nil || !ok {
		return nil, ok, err
	}
	return g, true, nil
}

func PutGenesis(db database.KeyValueWriter, g *Genesis) error {
	return PutObject(db, PrefixMetadataKey(genesisKey), g)
}
