// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/codec"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol = common.HexToAddress("0x00000000000000000000000000000000000ca201")
)

type testEnv struct {
	t     *testing.T
	db    database.Database
	codes chain.Codes
	next  uint64
}

func newTestEnv(t *testing.T) *testEnv {
	return &testEnv{
		t:  t,
		db: memdb.New(),
		codes: chain.Codes{
			chain.WalletCode: &chain.Wallet{},
			chain.ProxyCode:  &chain.Proxy{},
			V0Code:           &V0{},
			V1Code:           &V1{},
		},
	}
}

func (e *testEnv) root(from common.Address) *chain.Context {
	return &chain.Context{
		Codes:   e.codes,
		State:   e.db,
		Storage: chain.StorageOf(e.db, from),
		Self:    from,
		Caller:  from,
	}
}

// deploy creates [code] from [from] at a fresh address.
func (e *testEnv) deploy(from common.Address, code string, args interface{}) common.Address {
	var b []byte
	if args != nil {
		var err error
		b, err = codec.Marshal(args)
		if err != nil {
			e.t.Fatal(err)
		}
	}
	e.next++
	var addr common.Address
	addr[0] = 0xc0
	addr[19] = byte(e.next)
	if err := chain.Create(e.root(from), code, addr, 0, b); err != nil {
		e.t.Fatal(err)
	}
	return addr
}

// call invokes [to] from [from] and returns the events the call emitted.
func (e *testEnv) call(from common.Address, to common.Address, m chain.Method) ([]*chain.Log, error) {
	start, err := chain.GetLogCount(e.db)
	if err != nil {
		e.t.Fatal(err)
	}
	if err := chain.Invoke(e.root(from), to, 0, chain.MustEncodeCall(m)); err != nil {
		return nil, err
	}
	logs, err := chain.GetLogs(e.db, &chain.LogFilter{From: start})
	if err != nil {
		e.t.Fatal(err)
	}
	return logs, nil
}

func (e *testEnv) mustCall(from common.Address, to common.Address, m chain.Method) []*chain.Log {
	logs, err := e.call(from, to, m)
	if err != nil {
		e.t.Fatalf("%s rejected: %v", m.Name(), err)
	}
	return logs
}

func (e *testEnv) balance(token common.Address, owner common.Address) uint64 {
	bal, err := BalanceOf(chain.StorageOf(e.db, token), owner)
	if err != nil {
		e.t.Fatal(err)
	}
	return bal
}

func expectEvents(t *testing.T, logs []*chain.Log, exp ...string) {
	t.Helper()
	if len(logs) != len(exp) {
		t.Fatalf("events expected %v, got %v", exp, names(logs))
	}
	for i := range exp {
		if logs[i].Event.Name() != exp[i] {
			t.Fatalf("events expected %v, got %v", exp, names(logs))
		}
	}
}

func names(logs []*chain.Log) []string {
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = l.Event.Name()
	}
	return out
}
