// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Tx Correctness
	ErrInvalidMagic     = errors.New("invalid magic")
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidObject    = errors.New("invalid object")
	ErrUnknownCode      = errors.New("unknown code")
	ErrAddressInUse     = errors.New("address already in use")

	// Execution Correctness
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrCallDepth           = errors.New("max call depth exceeded")
	ErrNoCode              = errors.New("no code at address")
	ErrEmptyCall           = errors.New("empty call payload")
	ErrInvalidCall         = errors.New("invalid call payload")
	ErrUnknownMethod       = errors.New("unknown method")
	ErrUnauthorized        = errors.New("sender is not authorized")

	// Owners
	ErrZeroAddress        = errors.New("zero address")
	ErrOwnerExists        = errors.New("owner already exists")
	ErrNotOwner           = errors.New("not an owner")
	ErrTooManyOwners      = errors.New("too many owners")
	ErrNoOwners           = errors.New("no owners")
	ErrLastOwner          = errors.New("cannot remove the last owner")
	ErrInvalidRequirement = errors.New("invalid requirement")
	ErrOnlyWallet         = errors.New("caller must be the wallet itself")

	// Ledger
	ErrTransactionMissing     = errors.New("transaction missing")
	ErrAlreadyConfirmed       = errors.New("transaction already confirmed by owner")
	ErrNotConfirmed           = errors.New("transaction not confirmed by owner")
	ErrAlreadyExecuted        = errors.New("transaction already executed")
	ErrNotEnoughConfirmations = errors.New("not enough confirmations")
	ErrInvalidFailurePolicy   = errors.New("invalid failure policy")

	// Proxy
	ErrNotProxyOwner      = errors.New("caller is not the proxy owner")
	ErrSameImplementation = errors.New("implementation already set")
	ErrNoImplementation   = errors.New("no implementation")

	// Features
	ErrFeatureInitialized    = errors.New("feature already initialized")
	ErrFeatureNotInitialized = errors.New("feature not initialized")
	ErrFeatureNameTooLong    = errors.New("feature name longer than 32 bytes")
)
