// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/multisigvm/cmd/multisigvm/version"
	"github.com/ava-labs/multisigvm/vm"
)

const (
	envPrefix       = "MULTISIGVM"
	shutdownTimeout = 10 * time.Second
)

var rootCmd = &cobra.Command{
	Use:        "multisigvm",
	Short:      "MultisigVM node",
	SuggestFor: []string{"multisigvm"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
}

func init() {
	rootCmd.PersistentFlags().String("db-dir", ".multisigvm-db", "database directory")
	rootCmd.PersistentFlags().String("genesis-file", "", "genesis JSON used on first start")
	rootCmd.PersistentFlags().String("config-file", "", "VM config JSON")
	rootCmd.PersistentFlags().String("http-host", "127.0.0.1", "HTTP listen host")
	rootCmd.PersistentFlags().Int("http-port", 9650, "HTTP listen port")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		version.NewCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "multisigvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}

func runFunc(cmd *cobra.Command, args []string) error {
	lvl, err := log.LvlFromString(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	genesisBytes, err := readOptional(viper.GetString("genesis-file"))
	if err != nil {
		return err
	}
	configBytes, err := readOptional(viper.GetString("config-file"))
	if err != nil {
		return err
	}

	db, err := leveldb.New(viper.GetString("db-dir"), nil, logging.NoLog{})
	if err != nil {
		return err
	}
	v := &vm.VM{}
	if err := v.Initialize(db, genesisBytes, configBytes); err != nil {
		_ = db.Close()
		return err
	}
	handlers, err := v.CreateHandlers()
	if err != nil {
		_ = v.Shutdown()
		_ = db.Close()
		return err
	}
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(endpoint, h)
	}

	addr := net.JoinHostPort(viper.GetString("http-host"), strconv.Itoa(viper.GetInt("http-port")))
	srv := &http.Server{Addr: addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving", "addr", addr, "endpoint", vm.PublicEndpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	err = g.Wait()
	if serr := v.Shutdown(); err == nil {
		err = serr
	}
	if cerr := db.Close(); err == nil {
		err = cerr
	}
	return err
}
