// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// DogeNet represents which doge network a message belongs to.
type DogeNet uint32

// Constants used to indicate the message doge network. They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// Mainnet represents the main doge network.
	Mainnet DogeNet = 0xc0c0c0c0

	// Testnet represents the test network.
	Testnet DogeNet = 0xdcb7c1fc

	// Regtest represents the regression test network.
	Regtest DogeNet = 0xdab5bffa
)

// bnStrings is a map of doge networks back to their constant names for
// pretty printing.
var bnStrings = map[DogeNet]string{
	Mainnet: "Mainnet",
	Testnet: "Testnet",
	Regtest: "Regtest",
}

// String returns the DogeNet in human-readable form.
func (n DogeNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown DogeNet (%d)", uint32(n))
}
