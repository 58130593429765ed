// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation. This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left *chainhash.Hash, right *chainhash.Hash) *chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	newHash := chainhash.DoubleHashH(hash[:])
	return &newHash
}

// CheckMerkleBranch recomputes the merkle root a leaf hash resolves to when
// combined with the given branch of sibling hashes. The index selects the
// side each combination takes: for every branch level the low bit of the
// index picks whether the sibling goes on the left (bit set) or the right
// (bit clear), and the index shifts right afterwards. Bits of the index
// beyond the branch length are never inspected, and an empty branch returns
// the leaf unchanged.
//
// An index of -1 is the legacy "no branch" sentinel and yields the all-zero
// hash.
func CheckMerkleBranch(leaf chainhash.Hash, branch []chainhash.Hash, index int32) chainhash.Hash {
	if index == -1 {
		return chainhash.Hash{}
	}

	hash := leaf
	for i := range branch {
		if index&1 == 1 {
			hash = *HashMerkleBranches(&branch[i], &hash)
		} else {
			hash = *HashMerkleBranches(&hash, &branch[i])
		}
		index >>= 1
	}
	return hash
}

// nextPowerOfTwo returns the next highest power of two from a given number if
// it is not already a power of two. This is a helper function used during the
// calculation of a merkle tree.
func nextPowerOfTwo(n int) int {
	// Return the number if it's already a power of 2.
	if n&(n-1) == 0 {
		return n
	}

	// Figure out and return the next power of two.
	exponent := uint(0)
	for n != 0 {
		n >>= 1
		exponent++
	}
	return 1 << exponent // 2^exponent
}

// BuildMerkleTreeStore creates a merkle tree from a slice of transactions,
// stores it using a linear array, and returns a slice of the backing array.
// A linear array was chosen as opposed to an actual tree structure since it
// uses about half as much memory. The following describes a merkle tree and
// how it is stored in a linear array.
//
// A merkle tree is a tree in which every non-leaf node is the hash of its
// children nodes. A diagram depicting how this works for doge transactions
// where h(x) is a double sha256 follows:
//
//	         root = h1234 = h(h12 + h34)
//	        /                           \
//	  h12 = h(h1 + h2)            h34 = h(h3 + h4)
//	   /            \              /            \
//	h1 = h(tx1)  h2 = h(tx2)	h3 = h(tx3)  h4 = h(tx4)
//
// The above stored as a linear array is as follows:
//
//	[h1 h2 h3 h4 h12 h34 root]
//
// As the above shows, the merkle root is always the last element in the
// array.
//
// The number of inputs is not always a power of two which results in a
// balanced tree structure as above. In that case, parent nodes with no
// children are also zero and parent nodes with only a single left node
// are calculated by concatenating the left node with itself before hashing.
func BuildMerkleTreeStore(transactions []*wire.MsgTx) []*chainhash.Hash {
	// Calculate how many entries are required to hold the binary merkle
	// tree as a linear array and create an array of that size.
	nextPoT := nextPowerOfTwo(len(transactions))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	// Create the base transaction hashes and populate the array with them.
	for i, tx := range transactions {
		id := tx.TxID()
		merkles[i] = &id
	}

	// Start the array offset after the last transaction and adjusted to the
	// next power of two.
	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		// When there is no left child node, the parent is nil too.
		case merkles[i] == nil:
			merkles[offset] = nil

		// When there is no right child, the parent is generated by
		// hashing the concatenation of the left child with itself.
		case merkles[i+1] == nil:
			newHash := HashMerkleBranches(merkles[i], merkles[i])
			merkles[offset] = newHash

		// The normal case sets the parent node to the double sha256
		// of the concatenation of the left and right children.
		default:
			newHash := HashMerkleBranches(merkles[i], merkles[i+1])
			merkles[offset] = newHash
		}
		offset++
	}

	return merkles
}

// MerkleBranch extracts the branch of sibling hashes that proves the leaf at
// the given index into the root of a tree built by BuildMerkleTreeStore.
// It is the inverse of CheckMerkleBranch and exists mainly to build
// merge-mining proofs in tests and tooling.
func MerkleBranch(merkles []*chainhash.Hash, index int) []chainhash.Hash {
	numLeaves := (len(merkles) + 1) / 2
	branch := make([]chainhash.Hash, 0)

	offset := 0
	for levelSize := numLeaves; levelSize > 1; levelSize = (levelSize + 1) / 2 {
		sibling := merkles[offset+(index^1)]
		if sibling == nil {
			// A missing right node duplicates its left sibling.
			sibling = merkles[offset+index]
		}
		branch = append(branch, *sibling)
		offset += levelSize
		index >>= 1
	}
	return branch
}
