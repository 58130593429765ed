// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// testAuxBlockHash is the hash of the auxiliary block the proofs in this
// file claim. The value is arbitrary.
var testAuxBlockHash = chainhash.Hash{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
}

// auxPowOptions tweaks the proof produced by createTestAuxPow.
type auxPowOptions struct {
	// preambleLen is the number of filler bytes before the commitment in
	// the coinbase script.
	preambleLen int

	// omitMagic drops the merged-mining magic so the commitment relies
	// on the backward compatibility rule.
	omitMagic bool

	// magicGap inserts that many filler bytes between the magic and the
	// root.
	magicGap int

	// extraMagic appends a second copy of the magic at the end of the
	// script.
	extraMagic bool

	// truncateAfterRoot drops the aux tree size and nonce that follow
	// the root.
	truncateAfterRoot bool

	// sizeOverride replaces the committed aux tree size when non-zero.
	sizeOverride uint32

	// nonce is the aux tree slot nonce committed in the script.
	nonce uint32

	// chainBranch and chainIndex place the aux block hash in the aux
	// chain merkle tree.
	chainBranch []chainhash.Hash
	chainIndex  int32

	// coinbaseIndex overrides the index of the coinbase branch.
	coinbaseIndex int32

	// parentChainID is the chain identifier of the parent block header.
	parentChainID int32

	// auxBlockHash overrides the default aux block hash the proof is
	// built for.
	auxBlockHash *chainhash.Hash
}

// createTestAuxPow assembles a merge-mining proof for testAuxBlockHash
// according to the given options. With default options the proof is valid
// for the main network parameters.
func createTestAuxPow(opts auxPowOptions) *wire.MsgAuxPow {
	auxBlockHash := testAuxBlockHash
	if opts.auxBlockHash != nil {
		auxBlockHash = *opts.auxBlockHash
	}
	root := CheckMerkleBranch(auxBlockHash, opts.chainBranch,
		opts.chainIndex)

	size := uint32(1) << uint(len(opts.chainBranch))
	if opts.sizeOverride != 0 {
		size = opts.sizeOverride
	}

	script := make([]byte, 0, 80)
	for i := 0; i < opts.preambleLen; i++ {
		script = append(script, byte(i+1))
	}
	if !opts.omitMagic {
		script = append(script, mergedMiningHeader...)
	}
	for i := 0; i < opts.magicGap; i++ {
		script = append(script, 0xcc)
	}
	script = append(script, reverseHashBytes(root)...)
	if !opts.truncateAfterRoot {
		var tail [8]byte
		binary.LittleEndian.PutUint32(tail[0:4], size)
		binary.LittleEndian.PutUint32(tail[4:8], opts.nonce)
		script = append(script, tail[:]...)
	}
	if opts.extraMagic {
		script = append(script, mergedMiningHeader...)
	}

	coinbaseTx := wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Index: 0xffffffff},
			SignatureScript:  script,
			Sequence:         0xffffffff,
		}},
		TxOut:    []*wire.TxOut{{Value: 50 * 1e8, PkScript: []byte{0x51}}},
		LockTime: 0,
	}

	// The parent block holds only its coinbase, so the parent merkle
	// root is the coinbase ID itself and the coinbase branch is empty.
	parentHeader := wire.BlockHeader{
		Version:    opts.parentChainID*wire.VersionChainStart | 2,
		MerkleRoot: coinbaseTx.TxID(),
		Timestamp:  time.Unix(0, 0),
		Bits:       0x207fffff,
	}

	return &wire.MsgAuxPow{
		CoinbaseTx:     coinbaseTx,
		CoinbaseBranch: nil,
		CoinbaseIndex:  opts.coinbaseIndex,
		ChainBranch:    opts.chainBranch,
		ChainIndex:     opts.chainIndex,
		ParentHeader:   parentHeader,
	}
}

// checkAuxPowErr runs CheckAuxPow against the main network parameters and
// asserts the outcome.
func checkAuxPowErr(t *testing.T, name string, auxPow *wire.MsgAuxPow, want ErrorCode, wantOK bool) {
	t.Helper()

	err := CheckAuxPow(auxPow, &testAuxBlockHash,
		chaincfg.MainNetParams.AuxPowChainID, &chaincfg.MainNetParams)
	if wantOK {
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		return
	}
	rerr, ok := err.(RuleError)
	if !ok {
		t.Errorf("%s: error %v is not a RuleError", name, err)
		return
	}
	if rerr.ErrorCode != want {
		t.Errorf("%s: wrong error code - got %v, want %v", name,
			rerr.ErrorCode, want)
	}
}

// TestCheckAuxPow exercises the merge-mining validator across the accepting
// and every rejecting path.
func TestCheckAuxPow(t *testing.T) {
	// A trivial one-leaf aux tree with a 20-byte preamble and the magic
	// just before the root.
	happy := createTestAuxPow(auxPowOptions{preambleLen: 20})
	checkAuxPowErr(t, "happy path", happy, 0, true)

	// The same commitment without the magic is grandfathered as long as
	// the root starts within the first 20 bytes of the script.
	checkAuxPowErr(t, "no magic, offset 20",
		createTestAuxPow(auxPowOptions{preambleLen: 20, omitMagic: true}),
		0, true)
	checkAuxPowErr(t, "no magic, offset 21",
		createTestAuxPow(auxPowOptions{preambleLen: 21, omitMagic: true}),
		ErrAuxPowRootMustStartInFirst20Bytes, false)

	// A byte wedged between the magic and the root breaks the
	// commitment.
	checkAuxPowErr(t, "misaligned header",
		createTestAuxPow(auxPowOptions{preambleLen: 20, magicGap: 1}),
		ErrAuxPowHeaderNotJustBeforeRoot, false)

	// Two copies of the magic make the commitment ambiguous.
	checkAuxPowErr(t, "multiple headers",
		createTestAuxPow(auxPowOptions{preambleLen: 20, extraMagic: true}),
		ErrAuxPowMultipleMergedMiningHeaders, false)

	// The proved transaction must be the parent's coinbase.
	checkAuxPowErr(t, "not a generate",
		createTestAuxPow(auxPowOptions{preambleLen: 20, coinbaseIndex: 1}),
		ErrAuxPowNotAGenerate, false)

	// Mainnet is strict about the parent living on a foreign chain.
	checkAuxPowErr(t, "parent has our chain ID",
		createTestAuxPow(auxPowOptions{
			preambleLen:   20,
			parentChainID: chaincfg.MainNetParams.AuxPowChainID,
		}),
		ErrAuxPowParentHasOurChainID, false)

	// The script must commit to the size and nonce after the root.
	checkAuxPowErr(t, "missing size and nonce",
		createTestAuxPow(auxPowOptions{preambleLen: 20, truncateAfterRoot: true}),
		ErrAuxPowChainMerkleSizeMissing, false)

	// The committed size must be exactly 2^|chainBranch|.
	checkAuxPowErr(t, "size mismatch",
		createTestAuxPow(auxPowOptions{preambleLen: 20, sizeOverride: 2}),
		ErrAuxPowMerkleBranchSizeMismatch, false)

	// A corrupted parent merkle root fails the coinbase proof.
	badRoot := createTestAuxPow(auxPowOptions{preambleLen: 20})
	badRoot.ParentHeader.MerkleRoot[0] ^= 0x01
	checkAuxPowErr(t, "merkle root incorrect", badRoot,
		ErrAuxPowMerkleRootIncorrect, false)

	// A script that never mentions the root cannot commit to it.
	noRoot := createTestAuxPow(auxPowOptions{preambleLen: 20})
	noRoot.CoinbaseTx.TxIn[0].SignatureScript = []byte{0x01, 0x02, 0x03}
	// Rebuild the parent merkle root so only the commitment is missing.
	noRoot.ParentHeader.MerkleRoot = noRoot.CoinbaseTx.TxID()
	checkAuxPowErr(t, "missing chain merkle root", noRoot,
		ErrAuxPowMissingChainMerkleRoot, false)
}

// TestCheckAuxPowChainBranchBounds checks that a 30 level aux chain branch
// is accepted while 31 levels are rejected.
func TestCheckAuxPowChainBranchBounds(t *testing.T) {
	branch30 := make([]chainhash.Hash, 30)
	for i := range branch30 {
		branch30[i][0] = byte(i + 1)
	}

	// expectedMerkleIndex(0, 0x0062, 30) fixes the slot of this chain in
	// a 2^30 leaf aux tree.
	ok := createTestAuxPow(auxPowOptions{
		preambleLen: 2,
		chainBranch: branch30,
		chainIndex:  29760568,
	})
	checkAuxPowErr(t, "branch with 30 levels", ok, 0, true)

	branch31 := append(branch30, chainhash.Hash{0xff})
	tooLong := createTestAuxPow(auxPowOptions{
		preambleLen: 2,
		chainBranch: branch31,
		chainIndex:  29760568,
	})
	checkAuxPowErr(t, "branch with 31 levels", tooLong,
		ErrAuxPowChainBranchTooLong, false)
}

// TestCheckAuxPowExpectedIndex checks the deterministic slot assignment in
// a multi-leaf aux tree.
func TestCheckAuxPowExpectedIndex(t *testing.T) {
	branch := []chainhash.Hash{{0xaa}, {0xbb}}

	// With nonce 7 and chain ID 0x0062 the expected slot at height 2 is
	// 3; any other index must be rejected.
	checkAuxPowErr(t, "expected slot",
		createTestAuxPow(auxPowOptions{
			preambleLen: 20,
			nonce:       7,
			chainBranch: branch,
			chainIndex:  3,
		}), 0, true)

	checkAuxPowErr(t, "wrong slot",
		createTestAuxPow(auxPowOptions{
			preambleLen: 20,
			nonce:       7,
			chainBranch: branch,
			chainIndex:  1,
		}), ErrAuxPowWrongIndex, false)
}

// TestCheckAuxPowRelaxedChainID ensures networks without the strict chain
// ID rule accept a parent block carrying this chain's identifier.
func TestCheckAuxPowRelaxedChainID(t *testing.T) {
	auxPow := createTestAuxPow(auxPowOptions{
		preambleLen:   20,
		parentChainID: chaincfg.TestNetParams.AuxPowChainID,
	})

	err := CheckAuxPow(auxPow, &testAuxBlockHash,
		chaincfg.TestNetParams.AuxPowChainID, &chaincfg.TestNetParams)
	if err != nil {
		t.Errorf("relaxed chain ID: unexpected error %v", err)
	}
}

// TestExpectedMerkleIndex pins the wrapping 32-bit arithmetic of the slot
// assignment. Any implementation that reproduces the LCG must return the
// same values.
func TestExpectedMerkleIndex(t *testing.T) {
	tests := []struct {
		nonce   uint32
		chainID int32
		h       uint
		want    uint32
	}{
		{0, 0x0062, 4, 8},
		{0, 0x0062, 1, 0},
		{0, 0x0062, 2, 0},
		{7, 0x0062, 2, 3},
		{0, 0x0062, 30, 29760568},
		{0, 0x0062, 0, 0},
	}

	for _, test := range tests {
		got := expectedMerkleIndex(test.nonce, test.chainID, test.h)
		if got != test.want {
			t.Errorf("expectedMerkleIndex(%d, %#x, %d) = %d, want %d",
				test.nonce, test.chainID, test.h, got, test.want)
		}
	}
}
