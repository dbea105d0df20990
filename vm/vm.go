// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm hosts the governance state machine: it applies signed
// transactions one at a time and serves reads over JSON-RPC.
package vm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/multisigvm/chain"
	"github.com/ava-labs/multisigvm/storage"
	"github.com/ava-labs/multisigvm/token"
	"github.com/ava-labs/multisigvm/version"
)

const (
	Name           = "multisigvm"
	PublicEndpoint = "/public"
)

// DefaultCodes is every code kind a deployment can instantiate.
func DefaultCodes() chain.Codes {
	return chain.Codes{
		chain.WalletCode: &chain.Wallet{},
		chain.ProxyCode:  &chain.Proxy{},
		token.V0Code:     &token.V0{},
		token.V1Code:     &token.V1{},
	}
}

type VM struct {
	// Codes defaults to DefaultCodes.
	Codes chain.Codebook

	mu sync.RWMutex

	config  Config
	s       storage.Storage
	genesis *chain.Genesis

	// cache of receipts of rejected transactions
	rejected *cache.LRU
}

// Initialize loads the state in [db], writing [genesisBytes] into it when
// the database is fresh. An already initialized database keeps its genesis.
func (vm *VM) Initialize(db database.Database, genesisBytes []byte, configBytes []byte) error {
	log.Info("initializing multisigvm", "version", version.Version)

	vm.config.SetDefaults()
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &vm.config); err != nil {
			return fmt.Errorf("failed to unmarshal config %s: %w", string(configBytes), err)
		}
	}
	log.Info("parsed config", "config", fmt.Sprintf("%+v", vm.config))

	if vm.Codes == nil {
		vm.Codes = DefaultCodes()
	}
	vm.s = storage.New(db)
	vm.rejected = &cache.LRU{Size: vm.config.ReceiptCacheSize}

	initialized, err := vm.s.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		g, ok, err := chain.GetGenesis(vm.s.State())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: genesis missing from initialized state", ErrCorruption)
		}
		vm.genesis = g
		log.Info("loaded existing state", "magic", g.Magic)
		return nil
	}

	g := new(chain.Genesis)
	if err := json.Unmarshal(genesisBytes, g); err != nil {
		return fmt.Errorf("failed to unmarshal genesis: %w", err)
	}
	layer := vm.s.Begin()
	if err := g.Load(layer); err != nil {
		layer.Abort()
		return err
	}
	if err := layer.Commit(); err != nil {
		return err
	}
	if err := vm.s.SetInitialized(); err != nil {
		return err
	}
	if err := vm.s.Commit(); err != nil {
		return err
	}
	vm.genesis = g
	log.Info("initialized state from genesis", "magic", g.Magic, "allocations", len(g.Allocations))
	return nil
}

func (vm *VM) Shutdown() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.s == nil {
		return nil
	}
	if err := vm.s.Commit(); err != nil {
		return err
	}
	err := vm.s.Close()
	vm.s = nil
	return err
}

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

// Submit applies [tx] as one state transition. Only accepted transitions
// reach the database; the receipt of a rejected one is kept in memory.
func (vm *VM) Submit(tx *chain.Transaction) (*chain.Receipt, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.s == nil {
		return nil, ErrNotInitialized
	}
	r, err := chain.Apply(vm.genesis, vm.s.State(), vm.Codes, tx)
	if err != nil {
		if r != nil {
			vm.rejected.Put(tx.ID(), r)
		}
		log.Debug("rejected transaction", "txID", tx.ID(), "sender", tx.Sender(), "err", err)
		return r, err
	}
	if err := vm.s.Commit(); err != nil {
		return nil, err
	}
	log.Info("accepted transaction", "txID", tx.ID(), "sender", tx.Sender(), "index", r.Index, "logs", len(r.Logs))
	return r, nil
}

// Receipt looks up persisted receipts first and then rejected ones.
func (vm *VM) Receipt(txID ids.ID) (*chain.Receipt, error) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	if vm.s == nil {
		return nil, ErrNotInitialized
	}
	r, ok, err := chain.GetReceipt(vm.s.State(), txID)
	if err != nil {
		return nil, err
	}
	if ok {
		return r, nil
	}
	if v, ok := vm.rejected.Get(txID); ok {
		return v.(*chain.Receipt), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoReceipt, txID)
}
