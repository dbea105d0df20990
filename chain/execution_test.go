// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"
)

func TestExecutionFailurePolicies(t *testing.T) {
	t.Parallel()

	tt := []struct {
		policy   FailurePolicy
		executed bool
		failed   bool
	}{
		{policy: FailurePolicyRetry},
		{policy: FailurePolicyTerminal, executed: true, failed: true},
	}
	for i, tv := range tt {
		accts := newTestAccounts(t, 2)
		a, b := accts[0], accts[1]
		tc := newTestChain(t, accts...)
		wallet := tc.deployWallet(a, 2, tv.policy, a, b)
		target := tc.deploy(a, recorderCode, nil)

		tc.submit(a, wallet, target, 0, []byte("fail"))
		r := tc.mustCall(b, wallet, &ConfirmTransaction{ID: 0})
		// the event emitted by the failed call is discarded with it
		expectEvents(t, r, "Confirmation", "ExecutionFailure")
		failure := r.Logs[1].Event.(*ExecutionFailure)
		if failure.TransactionID != 0 || failure.Reason != errRecorderFailed.Error() {
			t.Fatalf("#%d: unexpected failure %+v", i, failure)
		}
		op := tc.operation(wallet, 0)
		if op.Executed != tv.executed || op.Failed != tv.failed {
			t.Fatalf("#%d: executed=%t failed=%t, expected %t %t", i, op.Executed, op.Failed, tv.executed, tv.failed)
		}
		// confirmations survive the failure
		count, err := GetConfirmationCount(tc.storage(wallet), 0)
		if err != nil {
			t.Fatal(err)
		}
		if count != 2 {
			t.Fatalf("#%d: confirmation count expected 2, got %d", i, count)
		}
	}
}

func TestExecutionRetry(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 2)
	a, b := accts[0], accts[1]
	tc := newTestChain(t, accts...)
	wallet := tc.deployWallet(a, 2, FailurePolicyRetry, a, b)
	target := tc.deploy(a, recorderCode, nil)

	if _, err := tc.send(a, target, 0, []byte("break")); err != nil {
		t.Fatal(err)
	}
	tc.submit(a, wallet, target, 0, []byte("payload"))
	r := tc.mustCall(b, wallet, &ConfirmTransaction{ID: 0})
	expectEvents(t, r, "Confirmation", "ExecutionFailure")

	if _, err := tc.send(a, target, 0, []byte("fix")); err != nil {
		t.Fatal(err)
	}
	r = tc.mustCall(b, wallet, &ExecuteTransaction{ID: 0})
	expectEvents(t, r, "recorded", "Execution")
	if !tc.operation(wallet, 0).Executed {
		t.Fatal("operation not executed")
	}
}

func TestExecutionMarksBeforeCall(t *testing.T) {
	t.Parallel()

	a := newTestAccount(t)
	tc := newTestChain(t, a)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a)
	target := tc.deploy(a, recorderCode, nil)

	r := tc.submit(a, wallet, target, 0, []byte("observe"))
	expectEvents(t, r, "Submission", "Confirmation", "Execution")
	observed, err := GetBool(tc.storage(target), observedKey)
	if err != nil {
		t.Fatal(err)
	}
	if !observed {
		t.Fatal("operation was not marked executed during its call")
	}
}

func TestExecutionCallDepth(t *testing.T) {
	t.Parallel()

	a := newTestAccount(t)
	tc := newTestChain(t, a)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a)
	target := tc.deploy(a, recorderCode, nil)

	if _, err := tc.send(a, target, 0, []byte("recurse")); !errors.Is(err, ErrCallDepth) {
		t.Fatalf("unexpected error %v", err)
	}
	r := tc.submit(a, wallet, target, 0, []byte("recurse"))
	expectEvents(t, r, "Submission", "Confirmation", "ExecutionFailure")
}

func TestExecutionValue(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 2)
	a, payee := accts[0], accts[1]
	tc := newTestChain(t, a)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a)

	// plain deposits
	r, err := tc.send(a, wallet, 1_000, nil)
	if err != nil {
		t.Fatal(err)
	}
	expectEvents(t, r, "Deposit")
	dep := r.Logs[0].Event.(*Deposit)
	if dep.Sender != a.addr || dep.Value != 1_000 {
		t.Fatalf("unexpected deposit %+v", dep)
	}

	// more than the wallet holds
	r = tc.submit(a, wallet, payee.addr, 5_000, nil)
	expectEvents(t, r, "Submission", "Confirmation", "ExecutionFailure")

	r = tc.submit(a, wallet, payee.addr, 400, nil)
	expectEvents(t, r, "Submission", "Confirmation", "Execution")

	if bal, _ := GetBalance(tc.db, payee.addr); bal != 400 {
		t.Fatalf("payee balance expected 400, got %d", bal)
	}

	r = tc.submit(a, wallet, wallet, 0, MustEncodeCall(&Withdraw{To: payee.addr}))
	expectEvents(t, r, "Submission", "Confirmation", "Withdrawal", "Execution")
	if bal, _ := GetBalance(tc.db, wallet); bal != 0 {
		t.Fatalf("wallet balance expected 0, got %d", bal)
	}
	if bal, _ := GetBalance(tc.db, payee.addr); bal != 1_000 {
		t.Fatalf("payee balance expected 1000, got %d", bal)
	}
}
