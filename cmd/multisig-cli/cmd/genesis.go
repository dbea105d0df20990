// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/multisigvm/chain"
)

var (
	genesisFile string

	magic uint64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [magic] [allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	Long: `
Creates a new genesis from a JSON list of allocations:

[{"address":"0x...","balance":1000000}]

$ multisig-cli genesis 7 allocations.json

`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("invalid args")
		}

		m, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		magic = m
		if magic == 0 {
			return chain.ErrInvalidMagic
		}

		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	genesis.Magic = magic

	a, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	allocs := []*chain.Allocation{}
	if err := json.Unmarshal(a, &allocs); err != nil {
		return err
	}
	genesis.Allocations = allocs
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
