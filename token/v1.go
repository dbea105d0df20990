// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/multisigvm/chain"
)

const V1Code = "token/v1"

var PausableFeature = chain.MustFeatureKey("pausable")

// V1 adds pausing to V0. Transfers and approvals fail while paused.
type V1 struct {
	V0
}

var _ chain.Contract = &V1{}

func (t *V1) Execute(c *chain.Context, payload []byte) error {
	m, err := chain.DecodeCall(payload)
	if err != nil {
		return err
	}
	switch m := m.(type) {
	case *InitializePausable:
		return initializePausable(c, m.Pauser)
	case *Pause:
		return setPaused(c, true)
	case *Unpause:
		return setPaused(c, false)
	case *Transfer, *Approve, *TransferFrom, *IncreaseAllowance, *DecreaseAllowance:
		if err := whenNotPaused(c); err != nil {
			return err
		}
	}
	return t.V0.execute(c, m)
}

func whenNotPaused(c *chain.Context) error {
	paused, err := IsPaused(c.Storage)
	if err != nil {
		return err
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func initializePausable(c *chain.Context, pauser common.Address) error {
	if err := chain.OnlyNotInitialized(c.Storage, PausableFeature); err != nil {
		return err
	}
	if pauser == (common.Address{}) {
		return chain.ErrZeroAddress
	}
	if err := chain.PutBool(c.Storage, chain.PrefixKey(pauserPrefix, pauser.Bytes()), true); err != nil {
		return err
	}
	if err := c.Emit(&PauserAdded{Account: pauser}); err != nil {
		return err
	}
	log.Info("token pausable", "token", c.Self, "pauser", pauser)
	return chain.SetInitialized(c, PausableFeature, c.Caller)
}

func setPaused(c *chain.Context, paused bool) error {
	ok, err := IsPauser(c.Storage, c.Caller)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotPauser, c.Caller)
	}
	cur, err := IsPaused(c.Storage)
	if err != nil {
		return err
	}
	switch {
	case paused && cur:
		return ErrPaused
	case !paused && !cur:
		return ErrNotPaused
	}
	if err := chain.PutBool(c.Storage, chain.PrefixKey(pausedPrefix, nil), paused); err != nil {
		return err
	}
	if paused {
		return c.Emit(&Paused{Account: c.Caller})
	}
	return c.Emit(&Unpaused{Account: c.Caller})
}
