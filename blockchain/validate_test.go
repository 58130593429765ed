// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/wire"
)

// TestCheckHeaderProofOfWorkGenesis validates the hard-coded genesis
// headers of all three networks against their own claimed targets. The
// genesis blocks were actually mined, so their scrypt hashes satisfy their
// bits.
func TestCheckHeaderProofOfWorkGenesis(t *testing.T) {
	tests := []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.RegressionNetParams,
	}

	for _, params := range tests {
		err := CheckHeaderProofOfWork(&params.GenesisBlock.Header, params)
		if err != nil {
			t.Errorf("%s: genesis header rejected: %v", params.Name, err)
		}
	}
}

// TestCheckProofOfWorkRange ensures out-of-range targets are rejected.
func TestCheckProofOfWorkRange(t *testing.T) {
	params := &chaincfg.MainNetParams
	hash := params.GenesisBlock.Header.PowHash()

	// Negative target.
	err := CheckProofOfWork(&hash, 0x01810000, params.PowLimit)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrUnexpectedDifficulty {
		t.Errorf("negative target: got %v, want ErrUnexpectedDifficulty", err)
	}

	// Target above the pow limit.
	err = CheckProofOfWork(&hash, 0x21008000, params.PowLimit)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrUnexpectedDifficulty {
		t.Errorf("target above limit: got %v, want ErrUnexpectedDifficulty", err)
	}
}

// TestCheckProofOfWorkHighHash ensures a hash above the target is rejected.
func TestCheckProofOfWorkHighHash(t *testing.T) {
	params := &chaincfg.MainNetParams
	header := params.GenesisBlock.Header

	// Demand far more work than the genesis header carries.
	hash := header.PowHash()
	err := CheckProofOfWork(&hash, 0x1a00ffff, params.PowLimit)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrHighHash {
		t.Errorf("high hash: got %v, want ErrHighHash", err)
	}
}

// TestCheckHeaderProofOfWorkVersionRules covers the chain ID enforcement
// and the auxpow bit/appendix consistency rules.
func TestCheckHeaderProofOfWorkVersionRules(t *testing.T) {
	params := &chaincfg.MainNetParams

	// A non-legacy header without our chain ID is rejected on strict
	// networks.
	header := params.GenesisBlock.Header
	header.Version = 3
	err := CheckHeaderProofOfWork(&header, params)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrWrongChainID {
		t.Errorf("foreign chain ID: got %v, want ErrWrongChainID", err)
	}

	// The auxpow version bit demands an appendix.
	header = params.GenesisBlock.Header
	header.Version = 2 | params.AuxPowChainID<<16 | 0x100
	err = CheckHeaderProofOfWork(&header, params)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrMissingAuxPow {
		t.Errorf("missing auxpow: got %v, want ErrMissingAuxPow", err)
	}

	// An appendix without the version bit is just as invalid.
	header = params.GenesisBlock.Header
	header.Version = 2 | params.AuxPowChainID<<16
	header.AuxPow = createTestAuxPow(auxPowOptions{preambleLen: 20})
	err = CheckHeaderProofOfWork(&header, params)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrUnexpectedAuxPow {
		t.Errorf("unexpected auxpow: got %v, want ErrUnexpectedAuxPow", err)
	}
}

// TestCheckBlockHeaderContext covers the height-gated version rules.
func TestCheckBlockHeaderContext(t *testing.T) {
	params := &chaincfg.MainNetParams

	tests := []struct {
		name    string
		version int32
		height  int32
		code    ErrorCode
		valid   bool
	}{
		{"legacy v1 before cutoff", 1, 100, 0, true},
		{"legacy v2 before cutoff", 2, 100, 0, true},
		{"legacy v1 at cutoff", 1, params.DisallowLegacyBlocksHeight, ErrLegacyBlockTooLate, false},
		{"legacy v2 past cutoff", 2, params.DisallowLegacyBlocksHeight + 1, ErrLegacyBlockTooLate, false},
		{"base v2 at BIP34", 2 | 0x0062<<16, params.BIP34Height, ErrBlockVersionTooOld, false},
		{"base v3 at BIP34", 3 | 0x0062<<16, params.BIP34Height, 0, true},
		{"base v3 at BIP65", 3 | 0x0062<<16, params.BIP65Height, ErrBlockVersionTooOld, false},
		{"base v4 at BIP65", 4 | 0x0062<<16, params.BIP65Height, 0, true},
		{"base v0", 0x0062 << 16, 100, ErrInvalidBlockVersion, false},
		{"base v5", 5 | 0x0062<<16, 100, ErrInvalidBlockVersion, false},
	}

	for _, test := range tests {
		header := wire.BlockHeader{Version: test.version}
		err := CheckBlockHeaderContext(&header, test.height, params)
		if test.valid {
			if err != nil {
				t.Errorf("%s: unexpected error %v", test.name, err)
			}
			continue
		}
		rerr, ok := err.(RuleError)
		if !ok || rerr.ErrorCode != test.code {
			t.Errorf("%s: got %v, want %v", test.name, err, test.code)
		}
	}
}

// TestCheckHeaderProofOfWorkAuxPow builds a full merge-mined header whose
// parent satisfies the regtest target and runs it end to end. The scrypt
// hash of the synthetic parent header below was checked against the
// 0x207fffff target independently.
func TestCheckHeaderProofOfWorkAuxPow(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	// A header of this chain; its own scrypt hash is irrelevant for
	// merge-mined blocks.
	header := wire.BlockHeader{
		Version:   2 | params.AuxPowChainID<<16 | wire.VersionAuxPow,
		Timestamp: time.Unix(0, 0),
		Bits:      0x207fffff,
	}

	blockHash := header.BlockHash()
	auxPow := createTestAuxPow(auxPowOptions{
		preambleLen:  20,
		auxBlockHash: &blockHash,
	})
	header.SetAuxPow(auxPow)

	err := CheckHeaderProofOfWork(&header, params)
	if err != nil {
		t.Fatalf("merge-mined header rejected: %v", err)
	}

	// Corrupting the committed root must fail the auxpow check, not the
	// parent proof of work.
	script := auxPow.CoinbaseTx.TxIn[0].SignatureScript
	script[len(script)-9] ^= 0x01 // last byte of the embedded root
	auxPow.ParentHeader.MerkleRoot = auxPow.CoinbaseTx.TxID()
	err = CheckHeaderProofOfWork(&header, params)
	if rerr, ok := err.(RuleError); !ok || rerr.ErrorCode != ErrAuxPowMissingChainMerkleRoot {
		t.Errorf("corrupted root: got %v, want ErrAuxPowMissingChainMerkleRoot", err)
	}
}
