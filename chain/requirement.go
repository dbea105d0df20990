// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
)

func GetRequired(db database.KeyValueReader) (uint64, error) {
	return GetUint64(db, PrefixKey(requiredPrefix, nil))
}

func putRequired(db database.KeyValueWriter, required uint64) error {
	return PutUint64(db, PrefixKey(requiredPrefix, nil), required)
}

// validRequirement enforces 1 <= required <= ownerCount.
func validRequirement(ownerCount int, required uint64) error {
	if required == 0 || ownerCount == 0 || required > uint64(ownerCount) {
		return fmt.Errorf("%w: required=%d owners=%d", ErrInvalidRequirement, required, ownerCount)
	}
	return nil
}

func changeRequirement(c *Context, required uint64) error {
	if err := onlyWallet(c); err != nil {
		return err
	}
	owners, err := GetOwners(c.Storage)
	if err != nil {
		return err
	}
	if err := validRequirement(len(owners), required); err != nil {
		return err
	}
	if err := putRequired(c.Storage, required); err != nil {
		return err
	}
	return c.Emit(&RequirementChange{Required: required})
}
