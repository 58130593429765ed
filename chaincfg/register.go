// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"

	"github.com/dogesuite/doged/wire"
)

// ErrUnknownNet describes an error where the network parameters requested
// from SelectParams do not correspond to any known network.
var ErrUnknownNet = errors.New("unknown doge network")

// activeParams holds the parameters of the network the process operates
// on. It is assigned once by SelectParams during initialization and is
// read-only afterwards.
var activeParams *Params

// SelectParams installs the parameter set of the given network as the
// process-wide active one. It is meant to be called exactly once during
// initialization, before anything reads ActiveParams; calling it again
// replaces the active set, which is only sensible in tests.
func SelectParams(net wire.DogeNet) error {
	switch net {
	case wire.Mainnet:
		activeParams = &MainNetParams
	case wire.Testnet:
		activeParams = &TestNetParams
	case wire.Regtest:
		activeParams = &RegressionNetParams
	default:
		return errors.Wrapf(ErrUnknownNet, "%s", net)
	}
	return nil
}

// ActiveParams returns the parameters selected by SelectParams. The
// returned value is shared and must be treated as immutable.
//
// Calling ActiveParams before SelectParams is a programming error and
// panics. Code that needs parameters for a network other than the active
// one, such as tests covering several networks, should pass *Params values
// around explicitly instead.
func ActiveParams() *Params {
	if activeParams == nil {
		panic("chaincfg: ActiveParams called before SelectParams")
	}
	return activeParams
}
