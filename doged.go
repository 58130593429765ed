// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dogesuite/doged/blockchain"
	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/config"
	"github.com/dogesuite/doged/dbaccess"
	"github.com/dogesuite/doged/logs"
	"github.com/dogesuite/doged/util/panics"
	"github.com/dogesuite/doged/version"
)

const blockDBName = "headers"

// dogedMain is the real main function for doged. The optional
// startedChan receives a value once all services have started.
func dogedMain(startedChan chan<- struct{}) error {
	cfg := config.ActiveConfig()
	params := chaincfg.ActiveParams()
	defer panics.HandlePanic(log, nil)

	log.Infof("Version %s", version.Version())
	log.Infof("Active network: %s", params.Name)

	// Validate the hard-coded genesis block of the selected network
	// before anything touches the database. A mismatch means a corrupted
	// binary and is fatal.
	genesisHash := params.GenesisBlock.BlockHash()
	if !genesisHash.IsEqual(params.GenesisHash) {
		return errors.Errorf("genesis block hash mismatch: got %s, "+
			"expected %s", genesisHash, params.GenesisHash)
	}
	err := blockchain.CheckHeaderProofOfWork(&params.GenesisBlock.Header, params)
	if err != nil {
		return errors.Wrap(err, "genesis block fails its own proof of work")
	}

	databaseContext, err := dbaccess.New(filepath.Join(cfg.DataDir, blockDBName))
	if err != nil {
		return errors.Wrap(err, "could not open the header database")
	}
	defer func() {
		log.Infof("Gracefully shutting down the header database...")
		err := databaseContext.Close()
		if err != nil {
			log.Errorf("Error shutting down the header database: %s", err)
		}
	}()

	// Seed the store with the genesis header on first run.
	hasGenesis, err := databaseContext.HasBlockHeader(params.GenesisHash)
	if err != nil {
		return err
	}
	if !hasGenesis {
		err = databaseContext.StoreBlockHeader(&params.GenesisBlock.Header)
		if err != nil {
			return err
		}
		err = databaseContext.StoreTip(params.GenesisHash)
		if err != nil {
			return err
		}
		log.Infof("Header store initialized with genesis block %s",
			params.GenesisHash)
	}

	tip, err := databaseContext.FetchTip()
	if err != nil {
		return err
	}
	log.Infof("Best stored header: %s", tip)

	if startedChan != nil {
		startedChan <- struct{}{}
	}
	return nil
}

// main wires the configuration and logging up and dispatches to dogedMain.
func main() {
	if err := config.LoadAndSetActiveConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.ActiveConfig()
	logs.InitLog(cfg.LogFile(), cfg.ErrLogFile())

	if err := dogedMain(nil); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}
