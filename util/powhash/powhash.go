// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powhash implements the scrypt proof-of-work digest used by
// Dogecoin-family chains.
package powhash

import (
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/dogesuite/doged/util/chainhash"
)

// Scrypt parameters fixed by consensus: N=1024, r=1, p=1, 32-byte output.
const (
	scryptN = 1024
	scryptR = 1
	scryptP = 1
)

// ScryptHash calculates scrypt_1024_1_1_256(b) and returns the resulting
// bytes as a Hash. The input serves as both the password and the salt, which
// for block headers is the exact 80-byte header preimage.
func ScryptHash(b []byte) chainhash.Hash {
	var h chainhash.Hash
	digest, err := scrypt.Key(b, b, scryptN, scryptR, scryptP, chainhash.HashSize)
	if err != nil {
		// The parameters are constant and valid, so Key can only fail
		// on a programming error.
		panic(fmt.Sprintf("invalid scrypt parameters: %v", err))
	}
	copy(h[:], digest)
	return h
}
