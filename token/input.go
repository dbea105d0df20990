// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/parser"
)

func init() {
	chain.RegisterMethodDecoder((&Transfer{}).Name(), func(p parser.Params) (chain.Method, error) {
		to, value, err := addressAmount(p)
		if err != nil {
			return nil, err
		}
		return &Transfer{To: to, Value: value}, nil
	})
	chain.RegisterMethodDecoder((&Approve{}).Name(), func(p parser.Params) (chain.Method, error) {
		spender, value, err := addressAmount(p)
		if err != nil {
			return nil, err
		}
		return &Approve{Spender: spender, Value: value}, nil
	})
	chain.RegisterMethodDecoder((&TransferFrom{}).Name(), func(p parser.Params) (chain.Method, error) {
		if err := p.Expect(3); err != nil {
			return nil, err
		}
		from, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		to, err := p.Address(1)
		if err != nil {
			return nil, err
		}
		value, err := p.Uint64(2)
		if err != nil {
			return nil, err
		}
		return &TransferFrom{From: from, To: to, Value: value}, nil
	})
	chain.RegisterMethodDecoder((&IncreaseAllowance{}).Name(), func(p parser.Params) (chain.Method, error) {
		spender, value, err := addressAmount(p)
		if err != nil {
			return nil, err
		}
		return &IncreaseAllowance{Spender: spender, Value: value}, nil
	})
	chain.RegisterMethodDecoder((&DecreaseAllowance{}).Name(), func(p parser.Params) (chain.Method, error) {
		spender, value, err := addressAmount(p)
		if err != nil {
			return nil, err
		}
		return &DecreaseAllowance{Spender: spender, Value: value}, nil
	})
	chain.RegisterMethodDecoder((&InitializeMintable{}).Name(), func(p parser.Params) (chain.Method, error) {
		if err := p.Expect(1); err != nil {
			return nil, err
		}
		minter, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		return &InitializeMintable{Minter: minter}, nil
	})
	chain.RegisterMethodDecoder((&Mint{}).Name(), func(p parser.Params) (chain.Method, error) {
		to, amount, err := addressAmount(p)
		if err != nil {
			return nil, err
		}
		return &Mint{To: to, Amount: amount}, nil
	})
	chain.RegisterMethodDecoder((&InitializePausable{}).Name(), func(p parser.Params) (chain.Method, error) {
		if err := p.Expect(1); err != nil {
			return nil, err
		}
		pauser, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		return &InitializePausable{Pauser: pauser}, nil
	})
	chain.RegisterMethodDecoder((&Pause{}).Name(), func(p parser.Params) (chain.Method, error) {
		if err := p.Expect(0); err != nil {
			return nil, err
		}
		return &Pause{}, nil
	})
	chain.RegisterMethodDecoder((&Unpause{}).Name(), func(p parser.Params) (chain.Method, error) {
		if err := p.Expect(0); err != nil {
			return nil, err
		}
		return &Unpause{}, nil
	})
}

func addressAmount(p parser.Params) (common.Address, uint64, error) {
	if err := p.Expect(2); err != nil {
		return common.Address{}, 0, err
	}
	addr, err := p.Address(0)
	if err != nil {
		return common.Address{}, 0, err
	}
	amount, err := p.Uint64(1)
	if err != nil {
		return common.Address{}, 0, err
	}
	return addr, amount, nil
}
