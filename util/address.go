// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/dogesuite/doged/chaincfg"
)

// ErrChecksumMismatch describes an error where decoding failed due to a bad
// checksum.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrUnknownAddressType describes an error where an address cannot be
// decoded as a specific address type due to the string encoding beginning
// with an identifier byte that is not one of the P2PKH or P2SH identifiers
// of the network parameters it is decoded against.
var ErrUnknownAddressType = errors.New("unknown address type")

// ripemd160Size is the number of bytes in a RIPEMD-160 hash, which is the
// payload length of both P2PKH and P2SH addresses.
const ripemd160Size = 20

// EncodeAddress returns the base58check encoding of a 20-byte payload with
// the given network identifier byte prepended. Use the network's
// PubKeyHashAddrID for pay-to-pubkey-hash addresses and ScriptHashAddrID
// for pay-to-script-hash addresses.
func EncodeAddress(hash160 []byte, netID byte) string {
	// Format is 1 byte for a network and address class (i.e. P2PKH vs
	// P2SH), 20 bytes for a RIPEMD160 hash, and 4 bytes of checksum.
	return base58.CheckEncode(hash160[:ripemd160Size], netID)
}

// DecodeAddress decodes the base58check string encoding of an address and
// returns its payload along with the network the address is intended for.
// Addresses whose identifier byte matches neither the P2PKH nor the P2SH
// prefix of the given network fail with ErrUnknownAddressType.
func DecodeAddress(addr string, params *chaincfg.Params) ([]byte, byte, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, 0, ErrChecksumMismatch
		}
		return nil, 0, errors.Errorf("decoded address is of unknown format: %v", err)
	}
	if len(decoded) != ripemd160Size {
		return nil, 0, errors.Errorf("decoded address is of unknown size %d",
			len(decoded))
	}
	if netID != params.PubKeyHashAddrID && netID != params.ScriptHashAddrID {
		return nil, 0, ErrUnknownAddressType
	}
	return decoded, netID, nil
}
