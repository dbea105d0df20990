// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/inconshreveable/log15"
)

const ProxyCode = "proxy"

// The proxy shares its storage with the implementation it forwards to, so
// its own slots sit at hashed keys no implementation prefix can produce.
var (
	implementationSlot = crypto.Keccak256([]byte("org.multisigvm.proxy.implementation"))
	proxyOwnerSlot     = crypto.Keccak256([]byte("org.multisigvm.proxy.owner"))
)

// Proxy forwards every call it does not handle itself to its current
// implementation, running the implementation against the proxy's storage.
type Proxy struct{}

var _ Contract = &Proxy{}

func (*Proxy) Construct(c *Context, _ []byte) error {
	if err := PutAddress(c.Storage, proxyOwnerSlot, c.Caller); err != nil {
		return err
	}
	log.Info("proxy created", "address", c.Self, "owner", c.Caller)
	return nil
}

func (p *Proxy) Execute(c *Context, payload []byte) error {
	m, err := DecodeCall(payload)
	if err != nil {
		return forward(c, payload)
	}
	switch m := m.(type) {
	case *UpgradeTo:
		return upgradeTo(c, m.Implementation)
	case *UpgradeToAndCall:
		if err := upgradeTo(c, m.Implementation); err != nil {
			return err
		}
		return DelegateInvoke(c, m.Implementation, m.Data)
	case *TransferProxyOwnership:
		return transferProxyOwnership(c, m.NewOwner)
	default:
		return forward(c, payload)
	}
}

func Implementation(db database.KeyValueReader) (common.Address, error) {
	return GetAddress(db, implementationSlot)
}

func ProxyOwner(db database.KeyValueReader) (common.Address, error) {
	return GetAddress(db, proxyOwnerSlot)
}

func onlyProxyOwner(c *Context) error {
	owner, err := ProxyOwner(c.Storage)
	if err != nil {
		return err
	}
	if c.Caller != owner {
		return fmt.Errorf("%w: %v", ErrNotProxyOwner, c.Caller)
	}
	return nil
}

func forward(c *Context, payload []byte) error {
	impl, err := Implementation(c.Storage)
	if err != nil {
		return err
	}
	if impl == (common.Address{}) {
		return ErrNoImplementation
	}
	return DelegateInvoke(c, impl, payload)
}

func upgradeTo(c *Context, impl common.Address) error {
	if err := onlyProxyOwner(c); err != nil {
		return err
	}
	if impl == (common.Address{}) {
		return ErrZeroAddress
	}
	current, err := Implementation(c.Storage)
	if err != nil {
		return err
	}
	if impl == current {
		return fmt.Errorf("%w: %v", ErrSameImplementation, impl)
	}
	if err := PutAddress(c.Storage, implementationSlot, impl); err != nil {
		return err
	}
	log.Info("proxy upgraded", "proxy", c.Self, "implementation", impl)
	return c.Emit(&Upgraded{Implementation: impl})
}

func transferProxyOwnership(c *Context, newOwner common.Address) error {
	if err := onlyProxyOwner(c); err != nil {
		return err
	}
	if newOwner == (common.Address{}) {
		return ErrZeroAddress
	}
	if err := PutAddress(c.Storage, proxyOwnerSlot, newOwner); err != nil {
		return err
	}
	return c.Emit(&ProxyOwnershipTransferred{PreviousOwner: c.Caller, NewOwner: newOwner})
}
