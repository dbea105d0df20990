// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"crypto/ecdsa"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/multisigvm/codec"
)

const (
	recorderCode = "test/recorder"

	testBalance = 1_000_000
)

var (
	errRecorderFailed = errors.New("recorder failed")
	errRecorderBroken = errors.New("recorder broken")

	brokenKey   = []byte("broken")
	lastKey     = []byte("last")
	observedKey = []byte("observed")
	callerKey   = []byte("caller")
)

type recorded struct {
	Payload []byte `serialize:"true" json:"payload"`
}

func (*recorded) Name() string { return "recorded" }

func init() {
	RegisterEvents(&recorded{})
}

// recorder is a test contract driven by raw payloads.
type recorder struct{}

func (*recorder) Construct(*Context, []byte) error { return nil }

func (r *recorder) Execute(c *Context, payload []byte) error {
	switch string(payload) {
	case "break":
		return PutBool(c.Storage, brokenKey, true)
	case "fix":
		return PutBool(c.Storage, brokenKey, false)
	case "fail":
		// Writes and events of a failed call must vanish.
		if err := c.Emit(&recorded{Payload: payload}); err != nil {
			return err
		}
		return errRecorderFailed
	case "recurse":
		return Invoke(c, c.Self, 0, payload)
	case "whoami":
		return PutAddress(c.Storage, callerKey, c.Caller)
	case "observe":
		// Records whether the calling wallet already marked operation 0.
		executed, err := IsExecuted(StorageOf(c.State, c.Caller), 0)
		if err != nil {
			return err
		}
		return PutBool(c.Storage, observedKey, executed)
	}
	broken, err := GetBool(c.Storage, brokenKey)
	if err != nil {
		return err
	}
	if broken {
		return errRecorderBroken
	}
	if err := c.Storage.Put(lastKey, payload); err != nil {
		return err
	}
	return c.Emit(&recorded{Payload: payload})
}

type testAccount struct {
	priv *ecdsa.PrivateKey
	addr common.Address
}

func newTestAccount(t *testing.T) *testAccount {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return &testAccount{priv: priv, addr: crypto.PubkeyToAddress(priv.PublicKey)}
}

func newTestAccounts(t *testing.T, n int) []*testAccount {
	accts := make([]*testAccount, n)
	for i := range accts {
		accts[i] = newTestAccount(t)
	}
	return accts
}

type testChain struct {
	t     *testing.T
	g     *Genesis
	db    database.Database
	codes Codes
}

// newTestChain funds every account in [funded] with testBalance.
func newTestChain(t *testing.T, funded ...*testAccount) *testChain {
	g := DefaultGenesis()
	for _, a := range funded {
		g.Allocations = append(g.Allocations, &Allocation{Address: a.addr, Balance: testBalance})
	}
	db := memdb.New()
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
	return &testChain{
		t:  t,
		g:  g,
		db: db,
		codes: Codes{
			WalletCode:   &Wallet{},
			ProxyCode:    &Proxy{},
			recorderCode: &recorder{},
		},
	}
}

func (tc *testChain) sign(from *testAccount, utx UnsignedTransaction) *Transaction {
	acct, err := GetAccount(tc.db, from.addr)
	if err != nil {
		tc.t.Fatal(err)
	}
	utx.SetMagic(tc.g.Magic)
	utx.SetNonce(acct.Nonce)
	dh, err := DigestHash(utx)
	if err != nil {
		tc.t.Fatal(err)
	}
	sig, err := Sign(dh, from.priv)
	if err != nil {
		tc.t.Fatal(err)
	}
	tx := NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		tc.t.Fatal(err)
	}
	return tx
}

func (tc *testChain) issue(from *testAccount, utx UnsignedTransaction) (*Receipt, error) {
	return Apply(tc.g, tc.db, tc.codes, tc.sign(from, utx))
}

func (tc *testChain) mustIssue(from *testAccount, utx UnsignedTransaction) *Receipt {
	r, err := tc.issue(from, utx)
	if err != nil {
		tc.t.Fatalf("transaction rejected: %v", err)
	}
	return r
}

func (tc *testChain) deploy(from *testAccount, code string, args interface{}) common.Address {
	var b []byte
	if args != nil {
		var err error
		b, err = codec.Marshal(args)
		if err != nil {
			tc.t.Fatal(err)
		}
	}
	r := tc.mustIssue(from, &CreateTx{BaseTx: &BaseTx{}, Code: code, Args: b})
	return r.Created
}

func (tc *testChain) deployWallet(from *testAccount, required uint64, policy FailurePolicy, owners ...*testAccount) common.Address {
	addrs := make([]common.Address, len(owners))
	for i, o := range owners {
		addrs[i] = o.addr
	}
	return tc.deploy(from, WalletCode, &WalletConfig{Owners: addrs, Required: required, FailurePolicy: policy})
}

func (tc *testChain) send(from *testAccount, to common.Address, value uint64, data []byte) (*Receipt, error) {
	return tc.issue(from, &CallTx{BaseTx: &BaseTx{}, To: to, Value: value, Data: data})
}

func (tc *testChain) call(from *testAccount, to common.Address, m Method) (*Receipt, error) {
	return tc.send(from, to, 0, MustEncodeCall(m))
}

func (tc *testChain) mustCall(from *testAccount, to common.Address, m Method) *Receipt {
	r, err := tc.call(from, to, m)
	if err != nil {
		tc.t.Fatalf("%s rejected: %v", m.Name(), err)
	}
	return r
}

// submit proposes a call of [m] on [dest] through [wallet].
func (tc *testChain) submit(from *testAccount, wallet common.Address, dest common.Address, value uint64, data []byte) *Receipt {
	return tc.mustCall(from, wallet, &SubmitTransaction{Destination: dest, Value: value, Data: data})
}

func (tc *testChain) storage(addr common.Address) database.Database {
	return StorageOf(tc.db, addr)
}

func (tc *testChain) owners(wallet common.Address) []common.Address {
	owners, err := GetOwners(tc.storage(wallet))
	if err != nil {
		tc.t.Fatal(err)
	}
	return owners
}

func (tc *testChain) operation(wallet common.Address, id uint64) *Operation {
	op, ok, err := GetTransaction(tc.storage(wallet), id)
	if err != nil {
		tc.t.Fatal(err)
	}
	if !ok {
		tc.t.Fatalf("operation %d missing", id)
	}
	return op
}

func eventNames(logs []*Log) []string {
	names := make([]string, len(logs))
	for i, l := range logs {
		names[i] = l.Event.Name()
	}
	return names
}

func expectEvents(t *testing.T, r *Receipt, exp ...string) {
	t.Helper()
	names := eventNames(r.Logs)
	if len(names) != len(exp) {
		t.Fatalf("events expected %v, got %v", exp, names)
	}
	for i := range exp {
		if names[i] != exp[i] {
			t.Fatalf("events expected %v, got %v", exp, names)
		}
	}
}

func addrsEqual(a []common.Address, b []common.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i][:], b[i][:]) {
			return false
		}
	}
	return true
}

func addrsOf(accts ...*testAccount) []common.Address {
	addrs := make([]common.Address, len(accts))
	for i, a := range accts {
		addrs[i] = a.addr
	}
	return addrs
}
