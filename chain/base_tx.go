// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Magic identifies the network the transaction is meant for.
	Magic uint64 `serialize:"true" json:"magic"`
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) GetNonce() uint64 {
	return b.Nonce
}

func (b *BaseTx) SetNonce(nonce uint64) {
	b.Nonce = nonce
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Magic: b.Magic,
		Nonce: b.Nonce,
	}
}
