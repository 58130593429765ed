// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"

	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// CheckProofOfWork ensures the given proof-of-work hash is not above the
// target difficulty expanded from bits, and that bits is in the valid range
// bounded by powLimit.
func CheckProofOfWork(powHash *chainhash.Hash, bits uint32, powLimit *big.Int) error {
	// The target difficulty must be larger than zero.
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low",
			target)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must not exceed the maximum allowed.
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, powLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The proof-of-work hash must not exceed the claimed target.
	hashNum := HashToBig(powHash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CheckHeaderProofOfWork validates the proof of work of a block header
// against the given network parameters, selecting the preimage the chain
// rules demand: a plain header proves work on its own scrypt hash, while a
// merge-mined header proves work on its parent header's scrypt hash after
// the merge-mining proof itself validates.
//
// This check is context free; height-dependent rules such as the retirement
// of legacy versions live in CheckBlockHeaderContext.
func CheckHeaderProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	// Except for legacy blocks, ensure the version carries this chain's
	// identifier. Legacy encodings are dealt with by the contextual
	// checks once the height is known.
	if !header.IsLegacy() && params.StrictChainID &&
		header.ChainID() != params.AuxPowChainID {

		str := fmt.Sprintf("block does not have our chain ID (got %d, "+
			"expected %d, full version %d)", header.ChainID(),
			params.AuxPowChainID, header.Version)
		return ruleError(ErrWrongChainID, str)
	}

	// If there is no auxpow, just check the block's own scrypt hash.
	if header.AuxPow == nil {
		if header.IsAuxPow() {
			str := "no auxpow on block with auxpow version"
			return ruleError(ErrMissingAuxPow, str)
		}

		powHash := header.PowHash()
		return CheckProofOfWork(&powHash, header.Bits, params.PowLimit)
	}

	// We have an auxpow. The version must agree, the merge-mining proof
	// must tie this block to the parent coinbase, and the parent header
	// must satisfy this block's claimed target.
	if !header.IsAuxPow() {
		str := "auxpow on block with non-auxpow version"
		return ruleError(ErrUnexpectedAuxPow, str)
	}

	blockHash := header.BlockHash()
	err := CheckAuxPow(header.AuxPow, &blockHash, header.ChainID(), params)
	if err != nil {
		return err
	}

	parentPowHash := header.AuxPow.ParentHeader.PowHash()
	return CheckProofOfWork(&parentPowHash, header.Bits, params.PowLimit)
}

// CheckBlockHeaderContext performs the validation rules on a block header
// that depend on its height in the block chain: the retirement of legacy
// version encodings and the minimum base versions the BIP34/BIP66/BIP65
// deployments lock in.
func CheckBlockHeaderContext(header *wire.BlockHeader, blockHeight int32,
	params *chaincfg.Params) error {

	if header.IsLegacy() {
		if blockHeight >= params.DisallowLegacyBlocksHeight {
			str := fmt.Sprintf("legacy block version %d rejected at "+
				"height %d", header.Version, blockHeight)
			return ruleError(ErrLegacyBlockTooLate, str)
		}
		return nil
	}

	baseVersion := header.BaseVersion()
	if baseVersion < 1 || baseVersion > 4 {
		str := fmt.Sprintf("block base version %d is outside the "+
			"valid range", baseVersion)
		return ruleError(ErrInvalidBlockVersion, str)
	}

	// Reject outdated base versions once a majority of the network has
	// upgraded. These were originally voted on by BIP34, BIP66 and
	// BIP65, whose outcomes the parameters pin as heights.
	if baseVersion < 2 && blockHeight >= params.BIP34Height ||
		baseVersion < 3 && blockHeight >= params.BIP66Height ||
		baseVersion < 4 && blockHeight >= params.BIP65Height {

		str := fmt.Sprintf("new blocks with version %d are no longer "+
			"valid at height %d", header.Version, blockHeight)
		return ruleError(ErrBlockVersionTooOld, str)
	}

	return nil
}
