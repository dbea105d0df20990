// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/multisigvm/codec"
)

// Event is a typed record emitted by a contract.
type Event interface {
	Name() string
}

var eventTypes = map[string]reflect.Type{}

// RegisterEvents registers [events] with the codec and the JSON decoder.
func RegisterEvents(events ...Event) {
	types := make([]interface{}, 0, len(events))
	for _, e := range events {
		name := e.Name()
		if _, ok := eventTypes[name]; ok {
			panic(fmt.Sprintf("duplicate event %q", name))
		}
		eventTypes[name] = reflect.TypeOf(e).Elem()
		types = append(types, e)
	}
	codec.RegisterTypes(types...)
}

// NewEvent returns an empty event of the type registered under [name].
func NewEvent(name string) (Event, bool) {
	t, ok := eventTypes[name]
	if !ok {
		return nil, false
	}
	return reflect.New(t).Interface().(Event), true
}

// Log is an event as persisted in state.
type Log struct {
	Index   uint64         `serialize:"true" json:"index"`
	Tx      uint64         `serialize:"true" json:"tx"`
	Emitter common.Address `serialize:"true" json:"emitter"`
	Event   Event          `serialize:"true" json:"event"`
}

type jsonLog struct {
	Index   uint64          `json:"index"`
	Tx      uint64          `json:"tx"`
	Emitter common.Address  `json:"emitter"`
	Name    string          `json:"name"`
	Event   json.RawMessage `json:"event"`
}

func (l *Log) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(l.Event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&jsonLog{
		Index:   l.Index,
		Tx:      l.Tx,
		Emitter: l.Emitter,
		Name:    l.Event.Name(),
		Event:   b,
	})
}

func (l *Log) UnmarshalJSON(b []byte) error {
	var j jsonLog
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	e, ok := NewEvent(j.Name)
	if !ok {
		return fmt.Errorf("unknown event %q", j.Name)
	}
	if err := json.Unmarshal(j.Event, e); err != nil {
		return err
	}
	l.Index = j.Index
	l.Tx = j.Tx
	l.Emitter = j.Emitter
	l.Event = e
	return nil
}

func GetLogCount(db database.KeyValueReader) (uint64, error) {
	return GetUint64(db, PrefixMetadataKey(logCountKey))
}

// EmitLog appends [e] to the log. Logs are written to the current state
// layer, so they are discarded together with a failed call.
func EmitLog(db database.Database, tx uint64, emitter common.Address, e Event) error {
	index, err := GetLogCount(db)
	if err != nil {
		return err
	}
	l := &Log{Index: index, Tx: tx, Emitter: emitter, Event: e}
	if err := PutObject(db, PrefixLogKey(index), l); err != nil {
		return err
	}
	return PutUint64(db, PrefixMetadataKey(logCountKey), index+1)
}

func GetLog(db database.KeyValueReader, index uint64) (*Log, bool, error) {
	l := new(Log)
	ok, err := GetObject(db, PrefixLogKey(index), l)
	if err != nil || !ok {
		return nil, ok, err
	}
	return l, true, nil
}

// LogFilter selects logs. Zero values match everything.
type LogFilter struct {
	Name    string          `json:"name,omitempty"`
	Emitter *common.Address `json:"emitter,omitempty"`
	Tx      *uint64         `json:"tx,omitempty"`
	From    uint64          `json:"from"`
	Limit   int             `json:"limit,omitempty"`
}

func (f *LogFilter) Match(l *Log) bool {
	if f.Name != "" && l.Event.Name() != f.Name {
		return false
	}
	if f.Emitter != nil && l.Emitter != *f.Emitter {
		return false
	}
	if f.Tx != nil && l.Tx != *f.Tx {
		return false
	}
	return true
}

// GetLogs scans logs from [f.From] in emission order.
func GetLogs(db database.KeyValueReader, f *LogFilter) ([]*Log, error) {
	count, err := GetLogCount(db)
	if err != nil {
		return nil, err
	}
	logs := []*Log{}
	for i := f.From; i < count; i++ {
		if f.Limit > 0 && len(logs) >= f.Limit {
			break
		}
		l, ok, err := GetLog(db, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: missing log %d", ErrInvalidObject, i)
		}
		if f.Match(l) {
			logs = append(logs, l)
		}
	}
	return logs, nil
}
