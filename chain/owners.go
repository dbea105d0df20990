// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

type ownerList struct {
	Owners []common.Address `serialize:"true"`
}

// GetOwners returns the owners in insertion order.
func GetOwners(db database.KeyValueReader) ([]common.Address, error) {
	l := new(ownerList)
	if _, err := GetObject(db, PrefixKey(ownersPrefix, nil), l); err != nil {
		return nil, err
	}
	return l.Owners, nil
}

func putOwners(db database.KeyValueWriter, owners []common.Address) error {
	return PutObject(db, PrefixKey(ownersPrefix, nil), &ownerList{Owners: owners})
}

func IsOwner(db database.KeyValueReader, addr common.Address) (bool, error) {
	owners, err := GetOwners(db)
	if err != nil {
		return false, err
	}
	return indexOf(owners, addr) >= 0, nil
}

func indexOf(addrs []common.Address, addr common.Address) int {
	for i, a := range addrs {
		if a == addr {
			return i
		}
	}
	return -1
}

func onlyOwner(c *Context) error {
	ok, err := IsOwner(c.Storage, c.Caller)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotOwner, c.Caller)
	}
	return nil
}

func addOwner(c *Context, owner common.Address) error {
	if err := onlyWallet(c); err != nil {
		return err
	}
	if owner == (common.Address{}) {
		return ErrZeroAddress
	}
	owners, err := GetOwners(c.Storage)
	if err != nil {
		return err
	}
	if indexOf(owners, owner) >= 0 {
		return fmt.Errorf("%w: %v", ErrOwnerExists, owner)
	}
	if len(owners)+1 > MaxOwnerCount {
		return fmt.Errorf("%w: %d", ErrTooManyOwners, MaxOwnerCount)
	}
	if err := putOwners(c.Storage, append(owners, owner)); err != nil {
		return err
	}
	return c.Emit(&OwnerAddition{Owner: owner})
}

func removeOwner(c *Context, owner common.Address) error {
	if err := onlyWallet(c); err != nil {
		return err
	}
	owners, err := GetOwners(c.Storage)
	if err != nil {
		return err
	}
	i := indexOf(owners, owner)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNotOwner, owner)
	}
	if len(owners) == 1 {
		return ErrLastOwner
	}
	remaining := make([]common.Address, 0, len(owners)-1)
	remaining = append(remaining, owners[:i]...)
	remaining = append(remaining, owners[i+1:]...)
	if err := putOwners(c.Storage, remaining); err != nil {
		return err
	}
	if err := pruneConfirmations(c.Storage, owner); err != nil {
		return err
	}
	required, err := GetRequired(c.Storage)
	if err != nil {
		return err
	}
	if required > uint64(len(remaining)) {
		if err := putRequired(c.Storage, uint64(len(remaining))); err != nil {
			return err
		}
		if err := c.Emit(&RequirementChange{Required: uint64(len(remaining))}); err != nil {
			return err
		}
	}
	return c.Emit(&OwnerRemoval{Owner: owner})
}

func replaceOwner(c *Context, owner common.Address, newOwner common.Address) error {
	if err := onlyWallet(c); err != nil {
		return err
	}
	owners, err := GetOwners(c.Storage)
	if err != nil {
		return err
	}
	i := indexOf(owners, owner)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNotOwner, owner)
	}
	if newOwner == (common.Address{}) {
		return ErrZeroAddress
	}
	if indexOf(owners, newOwner) >= 0 {
		return fmt.Errorf("%w: %v", ErrOwnerExists, newOwner)
	}
	owners[i] = newOwner
	if err := putOwners(c.Storage, owners); err != nil {
		return err
	}
	if err := pruneConfirmations(c.Storage, owner); err != nil {
		return err
	}
	if err := c.Emit(&OwnerRemoval{Owner: owner}); err != nil {
		return err
	}
	return c.Emit(&OwnerAddition{Owner: newOwner})
}
