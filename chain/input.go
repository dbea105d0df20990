// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/parser"
)

// MethodDecoder builds a method from positional parameters.
type MethodDecoder func(p parser.Params) (Method, error)

var methodDecoders = map[string]MethodDecoder{}

// RegisterMethodDecoder makes [name] available to Input.Decode.
func RegisterMethodDecoder(name string, d MethodDecoder) {
	if _, ok := methodDecoders[name]; ok {
		panic(fmt.Sprintf("duplicate method decoder %q", name))
	}
	methodDecoders[name] = d
}

// MethodNames lists every decodable method in lexical order.
func MethodNames() []string {
	names := make([]string, 0, len(methodDecoders))
	for name := range methodDecoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeMethod builds [name] from already split params.
func DecodeMethod(name string, p parser.Params) (Method, error) {
	d, ok := methodDecoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	m, err := d(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// Input is a method given by name with params in "a,b,number:5" form.
type Input struct {
	Method string `json:"method"`
	Params string `json:"params"`
}

func (i *Input) Decode() (Method, error) {
	p, err := parser.ParseParams(i.Params)
	if err != nil {
		return nil, err
	}
	return DecodeMethod(i.Method, p)
}

func init() {
	RegisterMethodDecoder((&SubmitTransaction{}).Name(), func(p parser.Params) (Method, error) {
		dest, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		value, err := p.Uint64(1)
		if err != nil {
			return nil, err
		}
		data, err := p.Bytes(2)
		if err != nil {
			return nil, err
		}
		return &SubmitTransaction{Destination: dest, Value: value, Data: data}, nil
	})
	RegisterMethodDecoder((&ConfirmTransaction{}).Name(), func(p parser.Params) (Method, error) {
		id, err := expectID(p)
		if err != nil {
			return nil, err
		}
		return &ConfirmTransaction{ID: id}, nil
	})
	RegisterMethodDecoder((&RevokeConfirmation{}).Name(), func(p parser.Params) (Method, error) {
		id, err := expectID(p)
		if err != nil {
			return nil, err
		}
		return &RevokeConfirmation{ID: id}, nil
	})
	RegisterMethodDecoder((&ExecuteTransaction{}).Name(), func(p parser.Params) (Method, error) {
		id, err := expectID(p)
		if err != nil {
			return nil, err
		}
		return &ExecuteTransaction{ID: id}, nil
	})
	RegisterMethodDecoder((&AddOwner{}).Name(), func(p parser.Params) (Method, error) {
		owner, err := expectAddress(p)
		if err != nil {
			return nil, err
		}
		return &AddOwner{Owner: owner}, nil
	})
	RegisterMethodDecoder((&RemoveOwner{}).Name(), func(p parser.Params) (Method, error) {
		owner, err := expectAddress(p)
		if err != nil {
			return nil, err
		}
		return &RemoveOwner{Owner: owner}, nil
	})
	RegisterMethodDecoder((&ReplaceOwner{}).Name(), func(p parser.Params) (Method, error) {
		if err := p.Expect(2); err != nil {
			return nil, err
		}
		owner, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		newOwner, err := p.Address(1)
		if err != nil {
			return nil, err
		}
		return &ReplaceOwner{Owner: owner, NewOwner: newOwner}, nil
	})
	RegisterMethodDecoder((&ChangeRequirement{}).Name(), func(p parser.Params) (Method, error) {
		if err := p.Expect(1); err != nil {
			return nil, err
		}
		r, err := p.Uint64(0)
		if err != nil {
			return nil, err
		}
		return &ChangeRequirement{Required: r}, nil
	})
	RegisterMethodDecoder((&Withdraw{}).Name(), func(p parser.Params) (Method, error) {
		to, err := expectAddress(p)
		if err != nil {
			return nil, err
		}
		return &Withdraw{To: to}, nil
	})
	RegisterMethodDecoder((&UpgradeTo{}).Name(), func(p parser.Params) (Method, error) {
		impl, err := expectAddress(p)
		if err != nil {
			return nil, err
		}
		return &UpgradeTo{Implementation: impl}, nil
	})
	// upgradeToAndCall takes the implementation followed by the nested
	// method and its params: "impl,initializeMintable,minter".
	RegisterMethodDecoder((&UpgradeToAndCall{}).Name(), func(p parser.Params) (Method, error) {
		impl, err := p.Address(0)
		if err != nil {
			return nil, err
		}
		name, err := p.String(1)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeMethod(name, p.Rest(2))
		if err != nil {
			return nil, err
		}
		data, err := EncodeCall(inner)
		if err != nil {
			return nil, err
		}
		return &UpgradeToAndCall{Implementation: impl, Data: data}, nil
	})
	RegisterMethodDecoder((&TransferProxyOwnership{}).Name(), func(p parser.Params) (Method, error) {
		owner, err := expectAddress(p)
		if err != nil {
			return nil, err
		}
		return &TransferProxyOwnership{NewOwner: owner}, nil
	})
}

func expectID(p parser.Params) (uint64, error) {
	if err := p.Expect(1); err != nil {
		return 0, err
	}
	return p.Uint64(0)
}

func expectAddress(p parser.Params) (common.Address, error) {
	if err := p.Expect(1); err != nil {
		return common.Address{}, err
	}
	return p.Address(0)
}
