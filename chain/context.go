// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

// MaxCallDepth bounds nested invocations.
const MaxCallDepth = 64

// Contract is the code behind a codebook entry. Contracts are stateless: all
// of their state lives in [Context.Storage].
type Contract interface {
	// Construct runs once when the code is deployed at a new address.
	Construct(c *Context, args []byte) error
	// Execute handles a call. Returning an error discards every effect of
	// the call, including emitted events.
	Execute(c *Context, payload []byte) error
}

// Codebook resolves the code kinds stored in accounts.
type Codebook interface {
	Code(kind string) (Contract, bool)
}

// Codes is a static Codebook.
type Codes map[string]Contract

func (cs Codes) Code(kind string) (Contract, bool) {
	c, ok := cs[kind]
	return c, ok
}

// Context is the execution environment of a single call frame.
type Context struct {
	Codes Codebook

	// State is the layer the frame writes to. Storage is the private
	// storage of Self inside State.
	State   database.Database
	Storage database.Database

	// Tx is the index of the state transition that started the call chain.
	Tx uint64

	Self   common.Address
	Caller common.Address
	Value  uint64
	Depth  int
}

// Emit appends [e] to the log on behalf of Self.
func (c *Context) Emit(e Event) error {
	return EmitLog(c.State, c.Tx, c.Self, e)
}

// Balance returns the native balance of Self.
func (c *Context) Balance() (uint64, error) {
	return GetBalance(c.State, c.Self)
}

func codeAt(codes Codebook, db database.KeyValueReader, addr common.Address) (Contract, bool, error) {
	a, err := GetAccount(db, addr)
	if err != nil {
		return nil, false, err
	}
	if len(a.Code) == 0 {
		return nil, false, nil
	}
	code, ok := codes.Code(a.Code)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s at %v", ErrUnknownCode, a.Code, addr)
	}
	return code, true, nil
}

// Invoke calls [to] from Self, moving [value] along. The callee runs in a
// child layer of c.State that is committed only if the call succeeds.
// Addresses without code accept the value and nothing else.
func Invoke(c *Context, to common.Address, value uint64, payload []byte) error {
	if c.Depth >= MaxCallDepth {
		return ErrCallDepth
	}
	layer := versiondb.New(c.State)
	if err := invoke(layer, c, to, value, payload); err != nil {
		layer.Abort()
		log.Debug("call reverted", "from", c.Self, "to", to, "value", value, "depth", c.Depth, "err", err)
		return err
	}
	return layer.Commit()
}

func invoke(layer database.Database, c *Context, to common.Address, value uint64, payload []byte) error {
	if err := Transfer(layer, c.Self, to, value); err != nil {
		return err
	}
	code, ok, err := codeAt(c.Codes, layer, to)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return code.Execute(&Context{
		Codes:   c.Codes,
		State:   layer,
		Storage: StorageOf(layer, to),
		Tx:      c.Tx,
		Self:    to,
		Caller:  c.Self,
		Value:   value,
		Depth:   c.Depth + 1,
	}, payload)
}

// DelegateInvoke runs the code deployed at [impl] against the storage of
// Self, keeping the caller and value of the current frame.
func DelegateInvoke(c *Context, impl common.Address, payload []byte) error {
	if c.Depth >= MaxCallDepth {
		return ErrCallDepth
	}
	layer := versiondb.New(c.State)
	if err := delegateInvoke(layer, c, impl, payload); err != nil {
		layer.Abort()
		log.Debug("delegated call reverted", "self", c.Self, "impl", impl, "depth", c.Depth, "err", err)
		return err
	}
	return layer.Commit()
}

func delegateInvoke(layer database.Database, c *Context, impl common.Address, payload []byte) error {
	code, ok, err := codeAt(c.Codes, layer, impl)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoCode, impl)
	}
	return code.Execute(&Context{
		Codes:   c.Codes,
		State:   layer,
		Storage: StorageOf(layer, c.Self),
		Tx:      c.Tx,
		Self:    c.Self,
		Caller:  c.Caller,
		Value:   c.Value,
		Depth:   c.Depth + 1,
	}, payload)
}

// Create deploys [kind] at [addr], funds it with [value] from Self and runs
// its constructor with Self as the caller.
func Create(c *Context, kind string, addr common.Address, value uint64, args []byte) error {
	code, ok := c.Codes.Code(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCode, kind)
	}
	a, err := GetAccount(c.State, addr)
	if err != nil {
		return err
	}
	if len(a.Code) > 0 || a.Nonce > 0 {
		return fmt.Errorf("%w: %v", ErrAddressInUse, addr)
	}
	a.Code = kind
	if err := PutAccount(c.State, addr, a); err != nil {
		return err
	}
	if err := Transfer(c.State, c.Self, addr, value); err != nil {
		return err
	}
	return code.Construct(&Context{
		Codes:   c.Codes,
		State:   c.State,
		Storage: StorageOf(c.State, addr),
		Tx:      c.Tx,
		Self:    addr,
		Caller:  c.Self,
		Value:   value,
		Depth:   c.Depth + 1,
	}, args)
}
