// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	log "github.com/inconshreveable/log15"
)

// tryExecute runs [op] once it gathered enough confirmations.
func tryExecute(c *Context, op *Operation) error {
	if op.Executed {
		return nil
	}
	confirmed, err := IsConfirmed(c.Storage, op.ID)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return execute(c, op)
}

// executeTransaction is the explicit trigger, used to retry an operation
// whose call failed before.
func executeTransaction(c *Context, id uint64) error {
	if err := onlyOwner(c); err != nil {
		return err
	}
	op, err := mustGetTransaction(c.Storage, id)
	if err != nil {
		return err
	}
	confs, err := GetConfirmations(c.Storage, id)
	if err != nil {
		return err
	}
	if indexOf(confs, c.Caller) < 0 {
		return fmt.Errorf("%w: id=%d owner=%v", ErrNotConfirmed, id, c.Caller)
	}
	if op.Executed {
		return fmt.Errorf("%w: %d", ErrAlreadyExecuted, id)
	}
	confirmed, err := IsConfirmed(c.Storage, id)
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("%w: %d", ErrNotEnoughConfirmations, id)
	}
	return execute(c, op)
}

// execute marks [op] executed before calling out, so a reentrant confirm or
// execute of the same id is rejected. The call runs in its own layer: its
// failure is recorded as an ExecutionFailure event and never fails the
// surrounding transition.
func execute(c *Context, op *Operation) error {
	op.Executed = true
	if err := putTransaction(c.Storage, op); err != nil {
		return err
	}
	callErr := Invoke(c, op.Destination, op.Value, op.Data)
	if callErr == nil {
		log.Info("executed transaction", "wallet", c.Self, "id", op.ID, "destination", op.Destination)
		return c.Emit(&Execution{TransactionID: op.ID})
	}

	policy, err := GetFailurePolicy(c.Storage)
	if err != nil {
		return err
	}
	switch policy {
	case FailurePolicyTerminal:
		op.Failed = true
	default:
		op.Executed = false
	}
	if err := putTransaction(c.Storage, op); err != nil {
		return err
	}
	log.Info("transaction execution failed", "wallet", c.Self, "id", op.ID, "destination", op.Destination, "policy", policy, "err", callErr)
	return c.Emit(&ExecutionFailure{TransactionID: op.ID, Reason: callErr.Error()})
}
