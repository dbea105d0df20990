// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "multisig-cli" implements multisigvm governance operations.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/multisigvm/client"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600

	envPrefix         = "MULTISIG_CLI"
	defaultConfigName = ".multisig-cli"
)

var (
	ErrMissingAddress = errors.New("address not configured")
	ErrInvalidAddress = errors.New("invalid address")
)

var (
	configFile string
	workDir    string

	rootCmd = &cobra.Command{
		Use:               "multisig-cli",
		Short:             "MultisigVM governance CLI",
		SuggestFor:        []string{"multisig-cli", "multisigcli", "multisigctl"},
		PersistentPreRunE: initConfig,
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		deployCmd,
		depositCmd,
		submitCmd,
		confirmCmd,
		revokeCmd,
		executeCmd,
		callCmd,
		getCmd,
		eventsCmd,
		receiptCmd,
		methodsCmd,
	)

	fs := rootCmd.PersistentFlags()
	fs.StringVar(
		&configFile,
		"config",
		"",
		"config file path (defaults to "+defaultConfigName+".yaml in the working directory)",
	)
	fs.String(
		"private-key-file",
		".multisig-cli-pk",
		"private key file path",
	)
	fs.String(
		"endpoint",
		"http://127.0.0.1:9650",
		"RPC endpoint for VM",
	)
	fs.String(
		"wallet",
		"",
		"multisig wallet address",
	)
	fs.String(
		"token",
		"",
		"token (proxy) address",
	)
	fs.StringP(
		"output",
		"o",
		outputText,
		"output format of reads (text, json, yaml)",
	)
	if err := bindFlags(fs); err != nil {
		panic(err)
	}
}

func bindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = viper.BindPFlag(f.Name, f)
	})
	return err
}

// initConfig layers flags over environment variables over the config file.
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}
	viper.AddConfigPath(workDir)
	viper.SetConfigName(defaultConfigName)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func newClient() client.Client {
	return client.New(viper.GetString("endpoint"), requestTimeout)
}

func configuredAddress(key string) (common.Address, error) {
	s := viper.GetString(key)
	if s == "" {
		return common.Address{}, fmt.Errorf("%w: set --%s or %q in the config file", ErrMissingAddress, key, key)
	}
	return parseAddress(s)
}

func walletAddress() (common.Address, error) {
	return configuredAddress("wallet")
}

func tokenAddress() (common.Address, error) {
	return configuredAddress("token")
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// resolveTarget maps "wallet" and "token" to the configured addresses and
// parses anything else as an address.
func resolveTarget(s string) (common.Address, error) {
	switch s {
	case "wallet":
		return walletAddress()
	case "token":
		return tokenAddress()
	default:
		return parseAddress(s)
	}
}
