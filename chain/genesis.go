// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

type Allocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic is included in every transaction so that transactions signed for
	// one network cannot be replayed on another.
	Magic uint64 `serialize:"true" json:"magic"`

	Allocations []*Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic:       1,
		Allocations: []*Allocation{},
	}
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return ErrInvalidMagic
	}
	seen := make(map[common.Address]struct{}, len(g.Allocations))
	for _, a := range g.Allocations {
		if _, ok := seen[a.Address]; ok {
			return fmt.Errorf("%w: duplicate allocation for %v", ErrInvalidObject, a.Address)
		}
		seen[a.Address] = struct{}{}
	}
	return nil
}

// Load credits the allocations and records the genesis in [db].
func (g *Genesis) Load(db database.Database) error {
	if err := g.Verify(); err != nil {
		return err
	}
	for _, a := range g.Allocations {
		if _, err := ModifyBalance(db, a.Address, true, a.Balance); err != nil {
			return err
		}
		log.Debug("loaded genesis allocation", "address", a.Address, "balance", a.Balance)
	}
	return PutGenesis(db, g)
}
