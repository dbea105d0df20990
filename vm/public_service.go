// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/storage"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueRawTxArgs struct {
	Tx hexutil.Bytes `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID    ids.ID         `serialize:"true" json:"txId"`
	Receipt *chain.Receipt `serialize:"true" json:"receipt"`
}

// IssueRawTx applies a signed transaction. A rejected transaction returns
// its error; the receipt stays available through Receipt.
func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx, err := chain.ParseTx(args.Tx)
	if err != nil {
		return err
	}
	reply.TxID = tx.ID()

	r, err := svc.vm.Submit(tx)
	if err != nil {
		return err
	}
	reply.Receipt = r
	return nil
}

type ReceiptArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type ReceiptReply struct {
	Receipt *chain.Receipt `serialize:"true" json:"receipt"`
}

func (svc *PublicService) Receipt(_ *http.Request, args *ReceiptArgs, reply *ReceiptReply) (err error) {
	reply.Receipt, err = svc.vm.Receipt(args.TxID)
	return err
}

type AddressArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type AccountReply struct {
	Account *chain.Account `serialize:"true" json:"account"`
}

func (svc *PublicService) Account(_ *http.Request, args *AddressArgs, reply *AccountReply) (err error) {
	reply.Account, err = svc.vm.Account(args.Address)
	return err
}

type LogsArgs struct {
	Filter chain.LogFilter `serialize:"true" json:"filter"`
}

type LogsReply struct {
	Logs []*chain.Log `serialize:"true" json:"logs"`
}

func (svc *PublicService) Logs(_ *http.Request, args *LogsArgs, reply *LogsReply) (err error) {
	reply.Logs, err = svc.vm.Logs(args.Filter)
	return err
}

type WalletReply struct {
	Wallet *WalletInfo `serialize:"true" json:"wallet"`
}

func (svc *PublicService) Wallet(_ *http.Request, args *AddressArgs, reply *WalletReply) (err error) {
	reply.Wallet, err = svc.vm.Wallet(args.Address)
	return err
}

type TransactionArgs struct {
	Wallet common.Address `serialize:"true" json:"wallet"`
	ID     uint64         `serialize:"true" json:"id"`
}

type TransactionReply struct {
	Info *TransactionInfo `serialize:"true" json:"info"`
}

func (svc *PublicService) Transaction(_ *http.Request, args *TransactionArgs, reply *TransactionReply) (err error) {
	reply.Info, err = svc.vm.Transaction(args.Wallet, args.ID)
	return err
}

type TransactionCountArgs struct {
	Wallet   common.Address `serialize:"true" json:"wallet"`
	Pending  bool           `serialize:"true" json:"pending"`
	Executed bool           `serialize:"true" json:"executed"`
}

type TransactionCountReply struct {
	Count uint64 `serialize:"true" json:"count"`
}

func (svc *PublicService) TransactionCount(_ *http.Request, args *TransactionCountArgs, reply *TransactionCountReply) (err error) {
	reply.Count, err = svc.vm.TransactionCount(args.Wallet, args.Pending, args.Executed)
	return err
}

type ProxyReply struct {
	Proxy *ProxyInfo `serialize:"true" json:"proxy"`
}

func (svc *PublicService) Proxy(_ *http.Request, args *AddressArgs, reply *ProxyReply) (err error) {
	reply.Proxy, err = svc.vm.Proxy(args.Address)
	return err
}

type FeatureArgs struct {
	Address common.Address   `serialize:"true" json:"address"`
	Feature chain.FeatureKey `serialize:"true" json:"feature"`
}

type FeatureReply struct {
	Flag *chain.FeatureFlag `serialize:"true" json:"flag"`
}

func (svc *PublicService) Feature(_ *http.Request, args *FeatureArgs, reply *FeatureReply) (err error) {
	reply.Flag, err = svc.vm.Feature(args.Address, args.Feature)
	return err
}

type TokenArgs struct {
	Address common.Address `serialize:"true" json:"address"`
	Owner   common.Address `serialize:"true" json:"owner"`
	Spender common.Address `serialize:"true" json:"spender"`
}

type TokenReply struct {
	Token *TokenInfo `serialize:"true" json:"token"`
}

func (svc *PublicService) Token(_ *http.Request, args *TokenArgs, reply *TokenReply) (err error) {
	reply.Token, err = svc.vm.Token(args.Address, args.Owner, args.Spender)
	return err
}

type StorageArgs struct {
	Address common.Address `serialize:"true" json:"address"`
	Start   hexutil.Bytes  `serialize:"true" json:"start"`
	End     hexutil.Bytes  `serialize:"true" json:"end,omitempty"`
	Limit   int            `serialize:"true" json:"limit"`
}

type StorageReply struct {
	Range *storage.RangeResponse `serialize:"true" json:"range"`
}

func (svc *PublicService) Storage(_ *http.Request, args *StorageArgs, reply *StorageReply) (err error) {
	reply.Range, err = svc.vm.Storage(args.Address, args.Start, args.End, args.Limit)
	return err
}
