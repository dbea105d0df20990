// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const defaultRangeLimit = 100

var ErrInvalidRange = errors.New("range end must sort after start")

type KeyValue struct {
	Key   hexutil.Bytes `json:"key"`
	Value hexutil.Bytes `json:"value"`
}

type RangeResponse struct {
	KeyValues []KeyValue `json:"keyValues"`
	// More is set when the limit cut the range short.
	More bool `json:"more"`
}

// Range lists the entries of [db] starting at [start]. Without WithRangeEnd
// the range covers every key that has [start] as prefix.
func Range(db database.Iteratee, start []byte, opts ...OpOption) (*RangeResponse, error) {
	ret := &Op{start: start, limit: defaultRangeLimit}
	ret.applyOpts(opts)

	end := ret.end
	if end == nil {
		end = prefixEnd(start)
	}
	if len(end) > 0 && bytes.Compare(end, start) <= 0 {
		return nil, ErrInvalidRange
	}

	resp := &RangeResponse{KeyValues: []KeyValue{}}
	cursor := db.NewIteratorWithStart(start)
	defer cursor.Release()
	for cursor.Next() {
		cur := cursor.Key()
		if len(end) > 0 && bytes.Compare(end, cur) <= 0 { // end <= cur
			break
		}
		if ret.limit > 0 && len(resp.KeyValues) == ret.limit {
			resp.More = true
			break
		}
		resp.KeyValues = append(resp.KeyValues, KeyValue{
			Key:   copyBytes(cur),
			Value: copyBytes(cursor.Value()),
		})
	}
	return resp, cursor.Error()
}

// prefixEnd returns the next lexicographical key after every key prefixed by
// [pfx]. An empty result means the range is unbounded (e.g., 0xffff).
func prefixEnd(pfx []byte) []byte {
	end := make([]byte, len(pfx))
	copy(end, pfx)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return []byte{}
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

type Op struct {
	start []byte
	end   []byte
	limit int
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// WithRangeEnd bounds the range to keys before [end] (exclusive).
func WithRangeEnd(end []byte) OpOption {
	return func(op *Op) { op.end = end }
}

// WithRangeLimit caps the number of entries. Zero means no limit.
func WithRangeLimit(limit int) OpOption {
	return func(op *Op) { op.limit = limit }
}
