// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines parameter parsing for governance commands.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	MaxParams = 16

	Delimiter    = ","
	NumberPrefix = "number:"
)

var (
	ErrTooManyParams  = errors.New("too many params")
	ErrMissingParam   = errors.New("missing param")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidBytes   = errors.New("invalid bytes")
	ErrInvalidBool    = errors.New("invalid bool")
)

// Params are positional parameters given as "a,b,number:5".
type Params []string

// ParseParams splits [s] on the delimiter. An empty string has no params.
func ParseParams(s string, opts ...OpOption) (Params, error) {
	ret := &Op{max: MaxParams}
	ret.applyOpts(opts)

	s = strings.TrimSpace(s)
	if s == "" {
		return Params{}, nil
	}
	splits := strings.Split(s, Delimiter)
	if len(splits) > ret.max {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyParams, len(splits), ret.max)
	}
	p := make(Params, len(splits))
	for i, v := range splits {
		p[i] = strings.TrimSpace(v)
	}
	return p, nil
}

// Expect returns an error unless there are exactly [n] params.
func (p Params) Expect(n int) error {
	switch {
	case len(p) < n:
		return fmt.Errorf("%w: expected %d, got %d", ErrMissingParam, n, len(p))
	case len(p) > n:
		return fmt.Errorf("%w: expected %d, got %d", ErrTooManyParams, n, len(p))
	default:
		return nil
	}
}

func (p Params) get(i int) (string, error) {
	if i < 0 || i >= len(p) {
		return "", fmt.Errorf("%w: #%d", ErrMissingParam, i)
	}
	return p[i], nil
}

func (p Params) String(i int) (string, error) {
	return p.get(i)
}

func (p Params) Address(i int) (common.Address, error) {
	s, err := p.get(i)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// Uint64 accepts both "5" and "number:5".
func (p Params) Uint64(i int) (uint64, error) {
	s, err := p.get(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, NumberPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// Bytes decodes a 0x-prefixed hex string. A missing trailing param is empty.
func (p Params) Bytes(i int) ([]byte, error) {
	if i == len(p) {
		return []byte{}, nil
	}
	s, err := p.get(i)
	if err != nil {
		return nil, err
	}
	if s == "" || s == "0x" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBytes, s)
	}
	return b, nil
}

func (p Params) Bool(i int) (bool, error) {
	s, err := p.get(i)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}
	return v, nil
}

// Rest returns the params from [i] on.
func (p Params) Rest(i int) Params {
	if i >= len(p) {
		return Params{}
	}
	return p[i:]
}

type Op struct {
	max int
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// WithMaxParams overrides MaxParams.
func WithMaxParams(n int) OpOption {
	return func(op *Op) {
		op.max = n
	}
}
