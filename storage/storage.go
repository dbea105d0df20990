// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage lays the node database out into buckets and hands out
// the layers every state transition runs in.
package storage

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
)

var (
	stateBucket = []byte("state")
	metaBucket  = []byte("meta")

	initializedKey = []byte("initialized")
)

var ErrClosed = errors.New("storage closed")

type Storage interface {
	// State holds accounts, contract storage, logs and receipts.
	State() database.Database

	// Begin opens a layer over State. Nothing written to it reaches the
	// base database until the layer and then the storage are committed.
	Begin() *versiondb.Database

	IsInitialized() (bool, error)
	SetInitialized() error

	Commit() error
	Close() error
}

type storage struct {
	baseDB  *versiondb.Database
	stateDB *prefixdb.Database
	metaDB  *prefixdb.Database
	closed  bool
}

func New(db database.Database) Storage {
	baseDB := versiondb.New(db)
	return &storage{
		baseDB:  baseDB,
		stateDB: prefixdb.New(stateBucket, baseDB),
		metaDB:  prefixdb.New(metaBucket, baseDB),
	}
}

func (s *storage) State() database.Database {
	return s.stateDB
}

func (s *storage) Begin() *versiondb.Database {
	return versiondb.New(s.stateDB)
}

func (s *storage) IsInitialized() (bool, error) {
	return s.metaDB.Has(initializedKey)
}

func (s *storage) SetInitialized() error {
	return s.metaDB.Put(initializedKey, nil)
}

func (s *storage) Commit() error {
	if s.closed {
		return ErrClosed
	}
	return s.baseDB.Commit()
}

func (s *storage) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.baseDB.Close()
}
