// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/multisigvm/codec"
)

// Contract storage (relative to the contract address):
// 0x0/ (owners) => []address
// 0x1/ (required) => uint64
// 0x2/ (failure policy) => uint64
// 0x3/ (transaction count) => uint64
// 0x4/ (transactions)
//   -> [id] => operation
// 0x5/ (confirmations)
//   -> [id] => []address
// 0x6/ (feature flags)
//   -> [feature key] => flag
//
// Prefixes below 0x10 are reserved for the wallet and the feature guard.

const (
	ownersPrefix        = 0x0
	requiredPrefix      = 0x1
	policyPrefix        = 0x2
	txCountPrefix       = 0x3
	transactionPrefix   = 0x4
	confirmationsPrefix = 0x5
	featurePrefix       = 0x6

	// ReservedPrefixes is the first prefix free for other contracts.
	ReservedPrefixes = 0x10
)

const (
	WalletCode = "wallet"

	MaxOwnerCount = 50
)

// FailurePolicy decides what happens to an operation whose call failed.
type FailurePolicy uint8

const (
	// FailurePolicyRetry reopens the operation so it can be executed again.
	FailurePolicyRetry FailurePolicy = iota
	// FailurePolicyTerminal keeps the operation executed and marks it failed.
	FailurePolicyTerminal
)

func (p FailurePolicy) String() string {
	switch p {
	case FailurePolicyRetry:
		return "retry"
	case FailurePolicyTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "retry":
		return FailurePolicyRetry, nil
	case "terminal":
		return FailurePolicyTerminal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFailurePolicy, s)
	}
}

// WalletConfig is the constructor argument of a wallet.
type WalletConfig struct {
	Owners        []common.Address `serialize:"true" json:"owners"`
	Required      uint64           `serialize:"true" json:"required"`
	FailurePolicy FailurePolicy    `serialize:"true" json:"failurePolicy"`
}

func (w *WalletConfig) Verify() error {
	if len(w.Owners) == 0 {
		return ErrNoOwners
	}
	if len(w.Owners) > MaxOwnerCount {
		return fmt.Errorf("%w: %d > %d", ErrTooManyOwners, len(w.Owners), MaxOwnerCount)
	}
	seen := make(map[common.Address]struct{}, len(w.Owners))
	for _, o := range w.Owners {
		if o == (common.Address{}) {
			return ErrZeroAddress
		}
		if _, ok := seen[o]; ok {
			return fmt.Errorf("%w: %v", ErrOwnerExists, o)
		}
		seen[o] = struct{}{}
	}
	if err := validRequirement(len(w.Owners), w.Required); err != nil {
		return err
	}
	if w.FailurePolicy > FailurePolicyTerminal {
		return ErrInvalidFailurePolicy
	}
	return nil
}

// Wallet is an N-of-M multisignature wallet. Every change to its owners or
// requirement must itself pass through a confirmed operation targeting the
// wallet.
type Wallet struct{}

var _ Contract = &Wallet{}

func (*Wallet) Construct(c *Context, args []byte) error {
	cfg := new(WalletConfig)
	if _, err := codec.Unmarshal(args, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidObject, err)
	}
	if err := cfg.Verify(); err != nil {
		return err
	}
	if err := putOwners(c.Storage, cfg.Owners); err != nil {
		return err
	}
	if err := putRequired(c.Storage, cfg.Required); err != nil {
		return err
	}
	if err := PutUint64(c.Storage, PrefixKey(policyPrefix, nil), uint64(cfg.FailurePolicy)); err != nil {
		return err
	}
	log.Info("wallet created", "address", c.Self, "owners", len(cfg.Owners), "required", cfg.Required, "policy", cfg.FailurePolicy)
	return nil
}

func (w *Wallet) Execute(c *Context, payload []byte) error {
	if len(payload) == 0 {
		if c.Value > 0 {
			return c.Emit(&Deposit{Sender: c.Caller, Value: c.Value})
		}
		return nil
	}
	m, err := DecodeCall(payload)
	if err != nil {
		return err
	}
	switch m := m.(type) {
	case *SubmitTransaction:
		_, err := submitTransaction(c, m)
		return err
	case *ConfirmTransaction:
		return confirmTransaction(c, m.ID)
	case *RevokeConfirmation:
		return revokeConfirmation(c, m.ID)
	case *ExecuteTransaction:
		return executeTransaction(c, m.ID)
	case *AddOwner:
		return addOwner(c, m.Owner)
	case *RemoveOwner:
		return removeOwner(c, m.Owner)
	case *ReplaceOwner:
		return replaceOwner(c, m.Owner, m.NewOwner)
	case *ChangeRequirement:
		return changeRequirement(c, m.Required)
	case *Withdraw:
		return withdraw(c, m.To)
	default:
		return UnknownMethodError(m)
	}
}

func onlyWallet(c *Context) error {
	if c.Caller != c.Self {
		return ErrOnlyWallet
	}
	return nil
}

func GetFailurePolicy(db database.KeyValueReader) (FailurePolicy, error) {
	v, err := GetUint64(db, PrefixKey(policyPrefix, nil))
	return FailurePolicy(v), err
}

func withdraw(c *Context, to common.Address) error {
	if err := onlyWallet(c); err != nil {
		return err
	}
	if to == (common.Address{}) {
		return ErrZeroAddress
	}
	bal, err := c.Balance()
	if err != nil {
		return err
	}
	if err := Invoke(c, to, bal, nil); err != nil {
		return err
	}
	return c.Emit(&Withdrawal{To: to, Value: bal})
}
