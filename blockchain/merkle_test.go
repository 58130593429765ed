// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// testTx returns a distinguishable dummy transaction whose signature script
// carries the given tag byte.
func testTx(tag byte) *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Index: 0xffffffff},
			SignatureScript:  []byte{tag},
			Sequence:         0xffffffff,
		}},
		TxOut: []*wire.TxOut{{Value: 1, PkScript: []byte{0x51}}},
	}
}

// TestMerkleBranchRoundTrip builds merkle trees of several widths and
// checks that the branch extracted for every leaf resolves back to the
// tree root.
func TestMerkleBranchRoundTrip(t *testing.T) {
	for _, numTxs := range []int{1, 2, 3, 4, 5, 8} {
		txs := make([]*wire.MsgTx, numTxs)
		for i := range txs {
			txs[i] = testTx(byte(i + 1))
		}

		merkles := BuildMerkleTreeStore(txs)
		root := merkles[len(merkles)-1]

		for i, tx := range txs {
			branch := MerkleBranch(merkles, i)
			got := CheckMerkleBranch(tx.TxID(), branch, int32(i))
			if !got.IsEqual(root) {
				t.Errorf("tree of %d: leaf %d branch resolves "+
					"to %v, want %v", numTxs, i, got, root)
			}
		}
	}
}

// TestCheckMerkleBranchEdgeCases pins the sentinel and the empty branch
// behaviors.
func TestCheckMerkleBranchEdgeCases(t *testing.T) {
	leaf := chainhash.Hash{0x42}

	// An empty branch returns the leaf unchanged.
	if got := CheckMerkleBranch(leaf, nil, 0); !got.IsEqual(&leaf) {
		t.Errorf("empty branch: got %v, want %v", got, leaf)
	}

	// The legacy -1 index yields the all-zero hash regardless of the
	// branch.
	var zeroHash chainhash.Hash
	got := CheckMerkleBranch(leaf, []chainhash.Hash{{0x01}}, -1)
	if !got.IsEqual(&zeroHash) {
		t.Errorf("index -1: got %v, want %v", got, zeroHash)
	}

	// Index bits beyond the branch length are never inspected: for a
	// single-level branch, indexes 0 and 2 resolve identically while 1
	// takes the other side.
	branch := []chainhash.Hash{{0x01}}
	at0 := CheckMerkleBranch(leaf, branch, 0)
	at1 := CheckMerkleBranch(leaf, branch, 1)
	at2 := CheckMerkleBranch(leaf, branch, 2)
	if !at0.IsEqual(&at2) {
		t.Errorf("high index bits inspected: %v != %v", at0, at2)
	}
	if at0.IsEqual(&at1) {
		t.Errorf("low index bit ignored: %v == %v", at0, at1)
	}
}

// TestCheckMerkleBranchAgainstTree cross-checks the branch walker against
// an independently computed two-level tree.
func TestCheckMerkleBranchAgainstTree(t *testing.T) {
	leaves := []chainhash.Hash{{0x01}, {0x02}, {0x03}, {0x04}}

	h01 := HashMerkleBranches(&leaves[0], &leaves[1])
	h23 := HashMerkleBranches(&leaves[2], &leaves[3])
	root := HashMerkleBranches(h01, h23)

	// Prove leaf 2 (index 2): sibling 3, then the 0-1 parent.
	branch := []chainhash.Hash{leaves[3], *h01}
	got := CheckMerkleBranch(leaves[2], branch, 2)
	if !got.IsEqual(root) {
		t.Errorf("leaf 2: got %v, want %v", got, root)
	}

	// Prove leaf 1 (index 1): sibling 0, then the 2-3 parent.
	branch = []chainhash.Hash{leaves[0], *h23}
	got = CheckMerkleBranch(leaves[1], branch, 1)
	if !got.IsEqual(root) {
		t.Errorf("leaf 1: got %v, want %v", got, root)
	}
}
