// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestWalletConfigVerify(t *testing.T) {
	t.Parallel()

	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")
	tooMany := make([]common.Address, MaxOwnerCount+1)
	for i := range tooMany {
		tooMany[i] = common.BigToAddress(common.Big1)
		tooMany[i][0] = byte(i + 1)
	}

	tt := []struct {
		cfg *WalletConfig
		err error
	}{
		{
			cfg: &WalletConfig{Owners: []common.Address{a, b}, Required: 2},
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a}, Required: 1, FailurePolicy: FailurePolicyTerminal},
		},
		{
			cfg: &WalletConfig{Required: 1},
			err: ErrNoOwners,
		},
		{
			cfg: &WalletConfig{Owners: tooMany, Required: 1},
			err: ErrTooManyOwners,
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a, {}}, Required: 1},
			err: ErrZeroAddress,
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a, a}, Required: 1},
			err: ErrOwnerExists,
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a, b}, Required: 0},
			err: ErrInvalidRequirement,
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a, b}, Required: 3},
			err: ErrInvalidRequirement,
		},
		{
			cfg: &WalletConfig{Owners: []common.Address{a}, Required: 1, FailurePolicy: 7},
			err: ErrInvalidFailurePolicy,
		},
	}
	for i, tv := range tt {
		err := tv.cfg.Verify()
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestWalletConstruct(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 3)
	tc := newTestChain(t, accts...)
	wallet := tc.deployWallet(accts[0], 2, FailurePolicyRetry, accts...)

	if owners := tc.owners(wallet); !addrsEqual(owners, addrsOf(accts...)) {
		t.Fatalf("owners expected %v, got %v", addrsOf(accts...), owners)
	}
	required, err := GetRequired(tc.storage(wallet))
	if err != nil {
		t.Fatal(err)
	}
	if required != 2 {
		t.Fatalf("required expected 2, got %d", required)
	}
	acct, err := GetAccount(tc.db, wallet)
	if err != nil {
		t.Fatal(err)
	}
	if acct.Code != WalletCode {
		t.Fatalf("code expected %q, got %q", WalletCode, acct.Code)
	}

	// invalid constructor arguments reject the whole deployment
	_, err = tc.issue(accts[0], &CreateTx{BaseTx: &BaseTx{}, Code: WalletCode, Args: []byte{0xff}})
	if !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("unexpected error %v", err)
	}
}

// Five owners with a requirement of three add a sixth.
func TestWalletAddOwnerScenario(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 6)
	owners, f := accts[:5], accts[5]
	tc := newTestChain(t, accts...)
	wallet := tc.deployWallet(owners[0], 3, FailurePolicyRetry, owners...)

	data := MustEncodeCall(&AddOwner{Owner: f.addr})
	r := tc.submit(owners[0], wallet, wallet, 0, data)
	expectEvents(t, r, "Submission", "Confirmation")
	sub := r.Logs[0].Event.(*Submission)
	if sub.TransactionID != 0 || sub.Proposer != owners[0].addr {
		t.Fatalf("unexpected submission %+v", sub)
	}

	r = tc.mustCall(owners[1], wallet, &ConfirmTransaction{ID: 0})
	expectEvents(t, r, "Confirmation")
	if tc.operation(wallet, 0).Executed {
		t.Fatal("operation executed with 2 of 3 confirmations")
	}

	r = tc.mustCall(owners[2], wallet, &ConfirmTransaction{ID: 0})
	expectEvents(t, r, "Confirmation", "OwnerAddition", "Execution")
	if !tc.operation(wallet, 0).Executed {
		t.Fatal("operation not executed")
	}
	if got := tc.owners(wallet); !addrsEqual(got, addrsOf(accts...)) {
		t.Fatalf("owners expected %v, got %v", addrsOf(accts...), got)
	}
	required, err := GetRequired(tc.storage(wallet))
	if err != nil {
		t.Fatal(err)
	}
	if required != 3 {
		t.Fatalf("required expected 3, got %d", required)
	}
	confs, err := GetConfirmations(tc.storage(wallet), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !addrsEqual(confs, addrsOf(owners[:3]...)) {
		t.Fatalf("confirmations expected %v, got %v", addrsOf(owners[:3]...), confs)
	}

	// late confirmations are rejected
	_, err = tc.call(owners[3], wallet, &ConfirmTransaction{ID: 0})
	if !errors.Is(err, ErrAlreadyExecuted) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestWalletOwnerManagement(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 4)
	a, b, c, d := accts[0], accts[1], accts[2], accts[3]
	tc := newTestChain(t, accts...)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a, b, c)

	tt := []struct {
		m        Method
		events   []string
		owners   []common.Address
		required uint64
		failure  bool
	}{
		{
			m:        &AddOwner{Owner: b.addr},
			events:   []string{"Submission", "Confirmation", "ExecutionFailure"},
			owners:   addrsOf(a, b, c),
			required: 1,
			failure:  true,
		},
		{
			m:        &AddOwner{Owner: common.Address{}},
			events:   []string{"Submission", "Confirmation", "ExecutionFailure"},
			owners:   addrsOf(a, b, c),
			required: 1,
			failure:  true,
		},
		{
			m:        &ReplaceOwner{Owner: b.addr, NewOwner: d.addr},
			events:   []string{"Submission", "Confirmation", "OwnerRemoval", "OwnerAddition", "Execution"},
			owners:   addrsOf(a, d, c),
			required: 1,
		},
		{
			m:        &ReplaceOwner{Owner: b.addr, NewOwner: b.addr},
			events:   []string{"Submission", "Confirmation", "ExecutionFailure"},
			owners:   addrsOf(a, d, c),
			required: 1,
			failure:  true,
		},
		{
			m:        &ChangeRequirement{Required: 3},
			events:   []string{"Submission", "Confirmation", "RequirementChange", "Execution"},
			owners:   addrsOf(a, d, c),
			required: 3,
		},
	}
	for i, tv := range tt {
		r := tc.submit(a, wallet, wallet, 0, MustEncodeCall(tv.m))
		expectEvents(t, r, tv.events...)
		if got := tc.owners(wallet); !addrsEqual(got, tv.owners) {
			t.Fatalf("#%d: owners expected %v, got %v", i, tv.owners, got)
		}
		required, err := GetRequired(tc.storage(wallet))
		if err != nil {
			t.Fatal(err)
		}
		if required != tv.required {
			t.Fatalf("#%d: required expected %d, got %d", i, tv.required, required)
		}
		if op := tc.operation(wallet, uint64(i)); op.Executed == tv.failure {
			t.Fatalf("#%d: unexpected executed=%t", i, op.Executed)
		}
	}

	// removing an owner lowers the requirement with it
	r := tc.submit(a, wallet, wallet, 0, MustEncodeCall(&RemoveOwner{Owner: c.addr}))
	expectEvents(t, r, "Submission", "Confirmation")
	tc.mustCall(d, wallet, &ConfirmTransaction{ID: 5})
	r = tc.mustCall(c, wallet, &ConfirmTransaction{ID: 5})
	expectEvents(t, r, "Confirmation", "RequirementChange", "OwnerRemoval", "Execution")
	if got := tc.owners(wallet); !addrsEqual(got, addrsOf(a, d)) {
		t.Fatalf("owners expected %v, got %v", addrsOf(a, d), got)
	}
	required, err := GetRequired(tc.storage(wallet))
	if err != nil {
		t.Fatal(err)
	}
	if required != 2 {
		t.Fatalf("required expected 2, got %d", required)
	}
}

func TestWalletOnlySelf(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, 2)
	a, b := accts[0], accts[1]
	tc := newTestChain(t, accts...)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a)

	for _, m := range []Method{
		&AddOwner{Owner: b.addr},
		&RemoveOwner{Owner: a.addr},
		&ReplaceOwner{Owner: a.addr, NewOwner: b.addr},
		&ChangeRequirement{Required: 1},
		&Withdraw{To: a.addr},
	} {
		if _, err := tc.call(a, wallet, m); !errors.Is(err, ErrOnlyWallet) {
			t.Fatalf("%s: unexpected error %v", m.Name(), err)
		}
	}
}

func TestWalletRemoveLastOwner(t *testing.T) {
	t.Parallel()

	a := newTestAccount(t)
	tc := newTestChain(t, a)
	wallet := tc.deployWallet(a, 1, FailurePolicyRetry, a)

	r := tc.submit(a, wallet, wallet, 0, MustEncodeCall(&RemoveOwner{Owner: a.addr}))
	expectEvents(t, r, "Submission", "Confirmation", "ExecutionFailure")
	if got := tc.owners(wallet); !addrsEqual(got, addrsOf(a)) {
		t.Fatalf("owners expected %v, got %v", addrsOf(a), got)
	}
}

func TestWalletTooManyOwners(t *testing.T) {
	t.Parallel()

	accts := newTestAccounts(t, MaxOwnerCount+1)
	tc := newTestChain(t, accts[0])
	wallet := tc.deployWallet(accts[0], 1, FailurePolicyRetry, accts[:MaxOwnerCount]...)

	r := tc.submit(accts[0], wallet, wallet, 0, MustEncodeCall(&AddOwner{Owner: accts[MaxOwnerCount].addr}))
	expectEvents(t, r, "Submission", "Confirmation", "ExecutionFailure")
	if got := len(tc.owners(wallet)); got != MaxOwnerCount {
		t.Fatalf("owner count expected %d, got %d", MaxOwnerCount, got)
	}
}

func TestParseFailurePolicy(t *testing.T) {
	t.Parallel()

	for _, p := range []FailurePolicy{FailurePolicyRetry, FailurePolicyTerminal} {
		got, err := ParseFailurePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("policy expected %v, got %v (%v)", p, got, err)
		}
	}
	if _, err := ParseFailurePolicy("sometimes"); !errors.Is(err, ErrInvalidFailurePolicy) {
		t.Fatalf("unexpected error %v", err)
	}
}
