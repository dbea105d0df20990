// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"crypto/ecdsa"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"

	"github.com/ava-labs/multisigvm/chain"
)

// Signs and issues the transaction. The magic and nonce of [utx] are filled
// in from the VM.
func SignIssueTx(
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (*chain.Receipt, error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return nil, err
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)
	acct, err := cli.Account(sender)
	if err != nil {
		return nil, err
	}
	utx.SetMagic(g.Magic)
	utx.SetNonce(acct.Nonce)

	dh, err := chain.DigestHash(utx)
	if err != nil {
		return nil, err
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return nil, err
	}

	color.Yellow("issuing tx %s (sender=%s, nonce=%d)", tx.ID(), sender, tx.GetNonce())
	txID, r, err := cli.IssueRawTx(tx.Bytes())
	if err != nil {
		color.Red("transaction %s rejected: %v", tx.ID(), err)
		return nil, err
	}
	color.Green("transaction %s applied at index %d", txID, r.Index)
	if r.Created != (common.Address{}) {
		color.Green("deployed at %s", r.Created)
	}

	if ret.printLogs {
		for _, l := range r.Logs {
			b, err := json.Marshal(l.Event)
			if err != nil {
				return nil, err
			}
			color.Blue("  [%d] %s by %s: %s", l.Index, l.Event.Name(), l.Emitter, b)
		}
	}

	if ret.wallet != nil {
		w, err := cli.Wallet(*ret.wallet)
		if err != nil {
			color.Red("cannot get wallet info %v", err)
			return nil, err
		}
		color.Blue(
			"wallet %s: owners=%d required=%d transactions=%d pending=%v",
			*ret.wallet, len(w.Owners), w.Required, w.TransactionCount, w.Pending,
		)
	}
	return r, nil
}
