// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/codec"
	"github.com/ava-labs/multisigvm/storage"
	"github.com/ava-labs/multisigvm/token"
)

type testKey struct {
	priv *ecdsa.PrivateKey
	addr common.Address
}

func newTestKey(t *testing.T) *testKey {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return &testKey{priv: priv, addr: crypto.PubkeyToAddress(priv.PublicKey)}
}

func genesisBytes(t *testing.T, magic uint64, keys ...*testKey) []byte {
	g := chain.DefaultGenesis()
	g.Magic = magic
	for _, k := range keys {
		g.Allocations = append(g.Allocations, &chain.Allocation{Address: k.addr, Balance: 1000})
	}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newTestVM(t *testing.T, db database.Database, keys ...*testKey) *VM {
	v := &VM{}
	if err := v.Initialize(db, genesisBytes(t, 3, keys...), nil); err != nil {
		t.Fatal(err)
	}
	return v
}

func signTx(t *testing.T, k *testKey, utx chain.UnsignedTransaction) *chain.Transaction {
	dh, err := chain.DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(dh, k.priv)
	if err != nil {
		t.Fatal(err)
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	return tx
}

func walletTx(t *testing.T, nonce uint64, cfg *chain.WalletConfig) *chain.CreateTx {
	args, err := codec.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return &chain.CreateTx{
		BaseTx: &chain.BaseTx{Magic: 3, Nonce: nonce},
		Code:   chain.WalletCode,
		Args:   args,
	}
}

func TestInitialize(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	db := memdb.New()
	k := newTestKey(t)
	v := newTestVM(t, db, k)
	assert.Equal(uint64(3), v.Genesis().Magic)

	a, err := v.Account(k.addr)
	require.NoError(err)
	assert.Equal(uint64(1000), a.Balance)
	require.NoError(v.Shutdown())
	require.NoError(v.Shutdown())

	_, err = v.Account(k.addr)
	assert.True(errors.Is(err, ErrNotInitialized))

	// existing state keeps its genesis
	v2 := &VM{}
	require.NoError(v2.Initialize(db, genesisBytes(t, 9), []byte(`{"maxLogsPerQuery":2}`)))
	assert.Equal(uint64(3), v2.Genesis().Magic)
	assert.Equal(2, v2.config.MaxLogsPerQuery)
	assert.Equal(1024, v2.config.ReceiptCacheSize)
	a, err = v2.Account(k.addr)
	require.NoError(err)
	assert.Equal(uint64(1000), a.Balance)

	v3 := &VM{}
	assert.Error(v3.Initialize(memdb.New(), []byte("{"), nil))
	v4 := &VM{}
	assert.Error(v4.Initialize(memdb.New(), genesisBytes(t, 0), nil))
}

func TestSubmit(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	alice, bob := newTestKey(t), newTestKey(t)
	v := newTestVM(t, memdb.New(), alice, bob)

	cfg := &chain.WalletConfig{Owners: []common.Address{alice.addr, bob.addr}, Required: 2}
	tx := signTx(t, alice, walletTx(t, 0, cfg))
	r, err := v.Submit(tx)
	require.NoError(err)
	require.True(r.Success)
	assert.Equal(uint64(0), r.Index)
	wallet := r.Created
	assert.Equal(crypto.CreateAddress(alice.addr, 0), wallet)

	stored, err := v.Receipt(tx.ID())
	require.NoError(err)
	assert.Equal(wallet, stored.Created)

	// replaying the same nonce is rejected and leaves no state behind
	replay := signTx(t, alice, walletTx(t, 0, &chain.WalletConfig{
		Owners:        cfg.Owners,
		Required:      1,
		FailurePolicy: chain.FailurePolicyTerminal,
	}))
	r, err = v.Submit(replay)
	assert.True(errors.Is(err, chain.ErrInvalidNonce))
	require.NotNil(r)
	assert.False(r.Success)
	rejected, err := v.Receipt(replay.ID())
	require.NoError(err)
	assert.NotEmpty(rejected.Error)
	a, err := v.Account(alice.addr)
	require.NoError(err)
	assert.Equal(uint64(1), a.Nonce)

	_, err = v.Receipt(ids.GenerateTestID())
	assert.True(errors.Is(err, ErrNoReceipt))

	w, err := v.Wallet(wallet)
	require.NoError(err)
	require.Equal(cfg.Owners, w.Owners)
	require.Equal(uint64(2), w.Required)
	assert.Equal(chain.FailurePolicyRetry, w.FailurePolicy)

	// alice proposes a deposit-free call to bob, bob confirms it
	submit := signTx(t, alice, &chain.CallTx{
		BaseTx: &chain.BaseTx{Magic: 3, Nonce: 1},
		To:     wallet,
		Data:   chain.MustEncodeCall(&chain.SubmitTransaction{Destination: bob.addr}),
	})
	r, err = v.Submit(submit)
	require.NoError(err)
	assert.Len(r.Logs, 2)

	info, err := v.Transaction(wallet, 0)
	require.NoError(err)
	assert.Equal([]common.Address{alice.addr}, info.Confirmations)
	assert.False(info.Confirmed)
	n, err := v.TransactionCount(wallet, true, false)
	require.NoError(err)
	assert.Equal(uint64(1), n)

	confirm := signTx(t, bob, &chain.CallTx{
		BaseTx: &chain.BaseTx{Magic: 3, Nonce: 0},
		To:     wallet,
		Data:   chain.MustEncodeCall(&chain.ConfirmTransaction{ID: 0}),
	})
	r, err = v.Submit(confirm)
	require.NoError(err)
	assert.Equal(uint64(2), r.Index)
	require.Len(r.Logs, 2)
	assert.Equal("Execution", r.Logs[1].Event.Name())

	info, err = v.Transaction(wallet, 0)
	require.NoError(err)
	assert.True(info.Transaction.Executed)
	assert.True(info.Confirmed)
	n, err = v.TransactionCount(wallet, false, true)
	require.NoError(err)
	assert.Equal(uint64(1), n)

	_, err = v.Transaction(wallet, 1)
	assert.True(errors.Is(err, chain.ErrTransactionMissing))

	logs, err := v.Logs(chain.LogFilter{Name: "Confirmation"})
	require.NoError(err)
	assert.Len(logs, 2)
	tx2 := uint64(2)
	logs, err = v.Logs(chain.LogFilter{Tx: &tx2})
	require.NoError(err)
	assert.Len(logs, 2)
}

func TestQueryKinds(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	alice := newTestKey(t)
	v := newTestVM(t, memdb.New(), alice)

	deploy := func(nonce uint64, code string) common.Address {
		r, err := v.Submit(signTx(t, alice, &chain.CreateTx{
			BaseTx: &chain.BaseTx{Magic: 3, Nonce: nonce},
			Code:   code,
		}))
		if err != nil {
			t.Fatal(err)
		}
		return r.Created
	}
	proxy := deploy(0, chain.ProxyCode)
	impl := deploy(1, token.V1Code)

	_, err := v.Submit(signTx(t, alice, &chain.CallTx{
		BaseTx: &chain.BaseTx{Magic: 3, Nonce: 2},
		To:     proxy,
		Data: chain.MustEncodeCall(&chain.UpgradeToAndCall{
			Implementation: impl,
			Data:           chain.MustEncodeCall(&token.InitializeMintable{Minter: alice.addr}),
		}),
	}))
	require.NoError(err)
	_, err = v.Submit(signTx(t, alice, &chain.CallTx{
		BaseTx: &chain.BaseTx{Magic: 3, Nonce: 3},
		To:     proxy,
		Data:   chain.MustEncodeCall(&token.Mint{To: alice.addr, Amount: 7}),
	}))
	require.NoError(err)

	p, err := v.Proxy(proxy)
	require.NoError(err)
	assert.Equal(impl, p.Implementation)
	assert.Equal(alice.addr, p.Owner)

	f, err := v.Feature(proxy, token.MintableFeature)
	require.NoError(err)
	assert.True(f.Initialized)
	assert.Equal(alice.addr, f.Initializer)
	f, err = v.Feature(proxy, token.PausableFeature)
	require.NoError(err)
	assert.False(f.Initialized)

	ti, err := v.Token(proxy, alice.addr, common.Address{})
	require.NoError(err)
	assert.Equal(uint64(7), ti.TotalSupply)
	assert.Equal(uint64(7), ti.Balance)
	assert.False(ti.Paused)

	_, err = v.Wallet(proxy)
	assert.True(errors.Is(err, ErrNotWallet))
	_, err = v.Proxy(impl)
	assert.True(errors.Is(err, ErrNotProxy))
	_, err = v.Wallet(alice.addr)
	assert.True(errors.Is(err, chain.ErrNoCode))

	resp, err := v.Storage(proxy, nil, nil, 2)
	require.NoError(err)
	assert.Len(resp.KeyValues, 2)
	assert.True(resp.More)

	all, err := v.Storage(proxy, nil, nil, 0)
	require.NoError(err)
	require.True(len(all.KeyValues) > 2)
	assert.False(all.More)
	bounded, err := v.Storage(proxy, nil, all.KeyValues[2].Key, 0)
	require.NoError(err)
	require.Len(bounded.KeyValues, 2)
	assert.Equal(all.KeyValues[:2], bounded.KeyValues)
	assert.False(bounded.More)
	_, err = v.Storage(proxy, all.KeyValues[1].Key, all.KeyValues[0].Key, 0)
	assert.True(errors.Is(err, storage.ErrInvalidRange))

	resp, err = v.Storage(impl, nil, nil, 0)
	require.NoError(err)
	assert.Len(resp.KeyValues, 0)
}
