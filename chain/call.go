// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/multisigvm/codec"
)

// Method is a decoded call payload.
type Method interface {
	Name() string
}

// Call is the envelope every call payload is encoded in.
type Call struct {
	Method Method `serialize:"true" json:"method"`
}

// RegisterMethods registers [methods] with the codec.
func RegisterMethods(methods ...Method) {
	types := make([]interface{}, len(methods))
	for i, m := range methods {
		types[i] = m
	}
	codec.RegisterTypes(types...)
}

func EncodeCall(m Method) ([]byte, error) {
	if m == nil {
		return nil, ErrEmptyCall
	}
	return codec.Marshal(&Call{Method: m})
}

func DecodeCall(payload []byte) (Method, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyCall
	}
	var c Call
	if _, err := codec.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCall, err)
	}
	if c.Method == nil {
		return nil, ErrInvalidCall
	}
	return c.Method, nil
}

// MustEncodeCall panics if [m] cannot be encoded.
func MustEncodeCall(m Method) []byte {
	b, err := EncodeCall(m)
	if err != nil {
		panic(err)
	}
	return b
}

// UnknownMethodError wraps ErrUnknownMethod with the name of [m].
func UnknownMethodError(m Method) error {
	return fmt.Errorf("%w: %s", ErrUnknownMethod, m.Name())
}
