// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
)

// Token storage (shared by every version so balances survive upgrades):
// 0x10/ (balances)
//   -> [owner] => uint64
// 0x11/ (allowances)
//   -> [owner][spender] => uint64
// 0x12/ (total supply) => uint64
// 0x13/ (minters)
//   -> [account] => bool
// 0x14/ (pausers)
//   -> [account] => bool
// 0x15/ (paused) => bool

const (
	balancePrefix = chain.ReservedPrefixes + iota
	allowancePrefix
	supplyPrefix
	minterPrefix
	pauserPrefix
	pausedPrefix
)

func balanceKey(owner common.Address) []byte {
	return chain.PrefixKey(balancePrefix, owner.Bytes())
}

func allowanceKey(owner common.Address, spender common.Address) []byte {
	return chain.PrefixKey(allowancePrefix, append(owner.Bytes(), spender.Bytes()...))
}

func BalanceOf(db database.KeyValueReader, owner common.Address) (uint64, error) {
	return chain.GetUint64(db, balanceKey(owner))
}

func Allowance(db database.KeyValueReader, owner common.Address, spender common.Address) (uint64, error) {
	return chain.GetUint64(db, allowanceKey(owner, spender))
}

func TotalSupply(db database.KeyValueReader) (uint64, error) {
	return chain.GetUint64(db, chain.PrefixKey(supplyPrefix, nil))
}

func IsMinter(db database.KeyValueReader, account common.Address) (bool, error) {
	return chain.GetBool(db, chain.PrefixKey(minterPrefix, account.Bytes()))
}

func IsPauser(db database.KeyValueReader, account common.Address) (bool, error) {
	return chain.GetBool(db, chain.PrefixKey(pauserPrefix, account.Bytes()))
}

func IsPaused(db database.KeyValueReader) (bool, error) {
	return chain.GetBool(db, chain.PrefixKey(pausedPrefix, nil))
}
