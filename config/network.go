package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/dogesuite/doged/chaincfg"
)

// NetworkFlags holds the network configuration, that is which network is
// selected.
type NetworkFlags struct {
	TestNet        bool `long:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`

	activeNetParams *chaincfg.Params
}

// ResolveNetwork parses the network command line arguments, installs the
// selected network as the process-wide active one and remembers its
// parameters. It returns an error if more than one network was selected,
// nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// The default network is mainnet.
	networkFlags.activeNetParams = &chaincfg.MainNetParams

	// Multiple networks can't be selected simultaneously. Count the
	// number of network flags passed and assign the active network
	// parameters while we're at it.
	numNets := 0
	if networkFlags.TestNet {
		numNets++
		networkFlags.activeNetParams = &chaincfg.TestNetParams
	}
	if networkFlags.RegressionTest {
		numNets++
		networkFlags.activeNetParams = &chaincfg.RegressionNetParams
	}
	if numNets > 1 {
		message := "multiple network parameters (--testnet, --regtest) " +
			"cannot be used together. Please choose only one network"
		err := errors.Errorf(message)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	return chaincfg.SelectParams(networkFlags.activeNetParams.Net)
}

// NetParams returns the parameters of the selected network.
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.activeNetParams
}
