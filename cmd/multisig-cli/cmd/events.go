// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var (
	eventsName    string
	eventsEmitter string
	eventsTx      int64
	eventsFrom    uint64
	eventsLimit   int
)

func init() {
	eventsCmd.Flags().StringVar(
		&eventsName,
		"name",
		"",
		"only events with this name (e.g. Submission)",
	)
	eventsCmd.Flags().StringVar(
		&eventsEmitter,
		"emitter",
		"",
		"only events emitted by: token, wallet or an address",
	)
	eventsCmd.Flags().Int64Var(
		&eventsTx,
		"tx",
		-1,
		"only events of this state transition",
	)
	eventsCmd.Flags().Uint64Var(
		&eventsFrom,
		"from",
		0,
		"first log index to scan",
	)
	eventsCmd.Flags().IntVar(
		&eventsLimit,
		"limit",
		100,
		"maximum number of events",
	)
}

var eventsCmd = &cobra.Command{
	Use:   "events [options]",
	Short: "Lists emitted events",
	RunE:  eventsFunc,
}

func eventsFunc(cmd *cobra.Command, args []string) error {
	f := chain.LogFilter{
		Name:  eventsName,
		From:  eventsFrom,
		Limit: eventsLimit,
	}
	if eventsEmitter != "" {
		emitter, err := resolveTarget(eventsEmitter)
		if err != nil {
			return err
		}
		f.Emitter = &emitter
	}
	if eventsTx >= 0 {
		tx := uint64(eventsTx)
		f.Tx = &tx
	}
	logs, err := newClient().Logs(f)
	if err != nil {
		return err
	}
	return printOutput(logs, func() {
		for _, l := range logs {
			b, err := json.Marshal(l.Event)
			if err != nil {
				color.Red("cannot encode event %d: %v", l.Index, err)
				continue
			}
			color.Cyan("[%d] tx=%d %s by %s: %s", l.Index, l.Tx, l.Event.Name(), l.Emitter, b)
		}
	})
}
