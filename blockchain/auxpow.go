// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// mergedMiningHeader is the magic that tags the merged-mining commitment
// inside the parent coinbase signature script.
var mergedMiningHeader = []byte{0xfa, 0xbe, 'm', 'm'}

// maxChainBranchLength is the maximum number of levels the aux chain merkle
// branch may have, bounding the aux tree at 2^30 chains.
const maxChainBranchLength = 30

// expectedMerkleIndex computes the slot a chain deterministically occupies
// in an aux tree of height h, from the nonce committed in the parent
// coinbase. All arithmetic wraps at 32 bits; the multiplier/increment pair
// is the classic rand() linear congruential generator and is consensus.
func expectedMerkleIndex(nonce uint32, chainID int32, h uint) uint32 {
	rand := nonce
	rand = rand*1103515245 + 12345
	rand += uint32(chainID)
	rand = rand*1103515245 + 12345
	return rand % (1 << h)
}

// reverseHashBytes returns the bytes of the given hash in reversed order.
// The aux chain merkle root is embedded into the parent coinbase script in
// this byte order; together with the display form in chainhash this is one
// of only two places a hash is ever byte-reversed.
func reverseHashBytes(hash chainhash.Hash) []byte {
	reversed := make([]byte, chainhash.HashSize)
	for i, b := range hash {
		reversed[chainhash.HashSize-1-i] = b
	}
	return reversed
}

// CheckAuxPow validates the given merge-mining proof for the block
// identified by auxBlockHash on the chain identified by chainID. A nil
// return means the parent chain's miner committed to the block, so the
// parent header's proof of work may stand in for this chain's.
//
// The proof of work on the parent header itself is deliberately not checked
// here; callers compare the parent's scrypt hash against the enclosing
// header's target separately. See CheckHeaderProofOfWork.
func CheckAuxPow(auxPow *wire.MsgAuxPow, auxBlockHash *chainhash.Hash,
	chainID int32, params *chaincfg.Params) error {

	// The proved transaction must be the parent block's generate
	// (coinbase) transaction, which lives at index zero by definition.
	if auxPow.CoinbaseIndex != 0 {
		str := fmt.Sprintf("auxpow coinbase branch index %d is not a "+
			"generate", auxPow.CoinbaseIndex)
		return ruleError(ErrAuxPowNotAGenerate, str)
	}
	if len(auxPow.CoinbaseTx.TxIn) == 0 {
		str := "auxpow coinbase transaction has no inputs"
		return ruleError(ErrAuxPowNotAGenerate, str)
	}

	// A parent block on this very chain could be replayed as its own
	// merge-mining proof, so strict networks require the parent to come
	// from a foreign chain.
	if params.StrictChainID && auxPow.ParentHeader.ChainID() == chainID {
		str := fmt.Sprintf("auxpow parent block has our chain ID %d",
			chainID)
		return ruleError(ErrAuxPowParentHasOurChainID, str)
	}

	if len(auxPow.ChainBranch) > maxChainBranchLength {
		str := fmt.Sprintf("auxpow chain merkle branch has %d levels, "+
			"max %d", len(auxPow.ChainBranch), maxChainBranchLength)
		return ruleError(ErrAuxPowChainBranchTooLong, str)
	}

	// Resolve the aux chain merkle root this block hash claims under the
	// chain branch. The script embeds the root byte-reversed.
	rootHash := CheckMerkleBranch(*auxBlockHash, auxPow.ChainBranch,
		auxPow.ChainIndex)
	reversedRoot := reverseHashBytes(rootHash)

	// The coinbase must actually be part of the parent block.
	coinbaseID := auxPow.CoinbaseTx.TxID()
	merkleRoot := CheckMerkleBranch(coinbaseID, auxPow.CoinbaseBranch,
		auxPow.CoinbaseIndex)
	if !merkleRoot.IsEqual(&auxPow.ParentHeader.MerkleRoot) {
		str := "auxpow coinbase branch does not resolve to the parent " +
			"block merkle root"
		return ruleError(ErrAuxPowMerkleRootIncorrect, str)
	}

	// Locate the merged-mining magic and the aux chain merkle root in the
	// parent coinbase script.
	script := auxPow.CoinbaseTx.TxIn[0].SignatureScript
	headPos := bytes.Index(script, mergedMiningHeader)
	rootPos := bytes.Index(script, reversedRoot)
	if rootPos < 0 {
		str := "auxpow parent coinbase is missing the chain merkle root"
		return ruleError(ErrAuxPowMissingChainMerkleRoot, str)
	}

	if headPos >= 0 {
		// A second occurrence of the magic would make the commitment
		// ambiguous.
		if bytes.Index(script[headPos+1:], mergedMiningHeader) >= 0 {
			str := "auxpow parent coinbase has multiple merged " +
				"mining headers"
			return ruleError(ErrAuxPowMultipleMergedMiningHeaders, str)
		}
		if headPos+len(mergedMiningHeader) != rootPos {
			str := "auxpow merged mining header is not just before " +
				"the chain merkle root"
			return ruleError(ErrAuxPowHeaderNotJustBeforeRoot, str)
		}
	} else {
		// For backward compatibility.
		if rootPos > 20 {
			str := fmt.Sprintf("auxpow chain merkle root at script "+
				"offset %d must start in the first 20 bytes",
				rootPos)
			return ruleError(ErrAuxPowRootMustStartInFirst20Bytes, str)
		}
	}

	// Ensure we are at a deterministic point in the merkle leaves by
	// checking the aux tree size and nonce committed right after the
	// root.
	tail := script[rootPos+chainhash.HashSize:]
	if len(tail) < 8 {
		str := "auxpow parent coinbase is missing the chain merkle " +
			"tree size and nonce"
		return ruleError(ErrAuxPowChainMerkleSizeMissing, str)
	}
	size := binary.LittleEndian.Uint32(tail[0:4])
	nonce := binary.LittleEndian.Uint32(tail[4:8])

	merkleHeight := uint(len(auxPow.ChainBranch))
	if size != 1<<merkleHeight {
		str := fmt.Sprintf("auxpow aux tree size %d does not match "+
			"chain branch height %d", size, merkleHeight)
		return ruleError(ErrAuxPowMerkleBranchSizeMismatch, str)
	}

	expected := expectedMerkleIndex(nonce, chainID, merkleHeight)
	if uint32(auxPow.ChainIndex) != expected {
		str := fmt.Sprintf("auxpow chain branch index %d is not the "+
			"expected slot %d", auxPow.ChainIndex, expected)
		return ruleError(ErrAuxPowWrongIndex, str)
	}

	return nil
}
