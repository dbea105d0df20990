// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FeatureKey names a one-shot initialization step.
type FeatureKey [32]byte

// NewFeatureKey right-pads [name] with zeros. Names that do not fit are
// rejected.
func NewFeatureKey(name string) (FeatureKey, error) {
	var k FeatureKey
	if len(name) > len(k) {
		return k, fmt.Errorf("%w: %q is %d bytes", ErrFeatureNameTooLong, name, len(name))
	}
	copy(k[:], name)
	return k, nil
}

func MustFeatureKey(name string) FeatureKey {
	k, err := NewFeatureKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

func (k FeatureKey) String() string {
	name := bytes.TrimRight(k[:], "\x00")
	for _, r := range string(name) {
		if !unicode.IsPrint(r) {
			return hexutil.Encode(k[:])
		}
	}
	return string(name)
}

func (k FeatureKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FeatureKey) UnmarshalText(b []byte) error {
	s := string(b)
	if len(s) == 66 && s[:2] == "0x" {
		raw, err := hexutil.Decode(s)
		if err != nil {
			return err
		}
		copy(k[:], raw)
		return nil
	}
	nk, err := NewFeatureKey(s)
	if err != nil {
		return err
	}
	*k = nk
	return nil
}

type FeatureFlag struct {
	Initialized bool           `serialize:"true" json:"initialized"`
	Initializer common.Address `serialize:"true" json:"initializer"`
}

func PrefixFeatureKey(k FeatureKey) []byte {
	return PrefixKey(featurePrefix, k[:])
}

func GetFeatureFlag(db database.KeyValueReader, k FeatureKey) (*FeatureFlag, error) {
	f := new(FeatureFlag)
	if _, err := GetObject(db, PrefixFeatureKey(k), f); err != nil {
		return nil, err
	}
	return f, nil
}

func IsInitialized(db database.KeyValueReader, k FeatureKey) (bool, error) {
	f, err := GetFeatureFlag(db, k)
	if err != nil {
		return false, err
	}
	return f.Initialized, nil
}

// SetInitialized flips the flag of [k] in the storage of Self. It can only
// happen once per key.
func SetInitialized(c *Context, k FeatureKey, initializer common.Address) error {
	if err := OnlyNotInitialized(c.Storage, k); err != nil {
		return err
	}
	f := &FeatureFlag{Initialized: true, Initializer: initializer}
	if err := PutObject(c.Storage, PrefixFeatureKey(k), f); err != nil {
		return err
	}
	return c.Emit(&FeatureInitialized{Feature: k, Initializer: initializer})
}

func OnlyInitialized(db database.KeyValueReader, k FeatureKey) error {
	ok, err := IsInitialized(db, k)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrFeatureNotInitialized, k)
	}
	return nil
}

func OnlyNotInitialized(db database.KeyValueReader, k FeatureKey) error {
	ok, err := IsInitialized(db, k)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%w: %s", ErrFeatureInitialized, k)
	}
	return nil
}
