// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dogesuite/doged/util/chainhash"
)

// maxMerkleBranchLen is the maximum number of hashes a serialized merkle
// branch is allowed to carry. Consensus bounds the aux chain branch to 30
// levels and the coinbase branch by the parent block's transaction count, so
// anything near this limit is garbage; the cap only guards allocations.
const maxMerkleBranchLen = 4096

// MsgAuxPow is the merge-mining proof that follows a block header whose
// version flags an auxpow. It ties this chain's block hash to a parent
// chain block: the parent's coinbase commits to an aux chain merkle root,
// the coinbase branch proves the coinbase into the parent's transaction
// tree, and the parent header carries the actual proof of work.
type MsgAuxPow struct {
	// CoinbaseTx is the parent chain's coinbase transaction. Its first
	// input's signature script embeds the merged-mining commitment.
	CoinbaseTx MsgTx

	// ParentBlockHash is the hash of the parent block the coinbase was
	// claimed from. Historical field; validation derives everything from
	// ParentHeader and never checks it.
	ParentBlockHash chainhash.Hash

	// CoinbaseBranch proves CoinbaseTx into the parent block's
	// transaction merkle tree at CoinbaseIndex.
	CoinbaseBranch []chainhash.Hash
	CoinbaseIndex  int32

	// ChainBranch proves this chain's block hash into the aux chain
	// merkle tree at ChainIndex. The tree's root is what the parent
	// coinbase commits to.
	ChainBranch []chainhash.Hash
	ChainIndex  int32

	// ParentHeader is the parent block's header. Only its fixed 80-byte
	// preimage is carried; a parent's own auxpow bit is never followed.
	ParentHeader BlockHeader
}

// SerializeSize returns the number of bytes it would take to serialize the
// auxpow appendix.
func (msg *MsgAuxPow) SerializeSize() int {
	n := msg.CoinbaseTx.SerializeSize() + chainhash.HashSize +
		VarIntSerializeSize(uint64(len(msg.CoinbaseBranch))) +
		len(msg.CoinbaseBranch)*chainhash.HashSize + 4 +
		VarIntSerializeSize(uint64(len(msg.ChainBranch))) +
		len(msg.ChainBranch)*chainhash.HashSize + 4 +
		BlockHeaderLen
	return n
}

// Deserialize decodes an auxpow appendix from r into the receiver.
func (msg *MsgAuxPow) Deserialize(r io.Reader) error {
	return readAuxPow(r, 0, msg)
}

// Serialize encodes the auxpow appendix to w.
func (msg *MsgAuxPow) Serialize(w io.Writer) error {
	return writeAuxPow(w, 0, msg)
}

// readMerkleBranch reads a varint-counted sequence of hashes from r.
func readMerkleBranch(r io.Reader, fieldName string) ([]chainhash.Hash, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > maxMerkleBranchLen {
		str := errors.Errorf("%s is larger than the max allowed length "+
			"[count %d, max %d]", fieldName, count,
			maxMerkleBranchLen).Error()
		return nil, messageError("readMerkleBranch", str)
	}

	branch := make([]chainhash.Hash, count)
	for i := uint64(0); i < count; i++ {
		err := readElement(r, &branch[i])
		if err != nil {
			return nil, err
		}
	}
	return branch, nil
}

// writeMerkleBranch writes a varint-counted sequence of hashes to w.
func writeMerkleBranch(w io.Writer, branch []chainhash.Hash) error {
	err := WriteVarInt(w, uint64(len(branch)))
	if err != nil {
		return err
	}
	for i := range branch {
		err := writeElement(w, &branch[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// readAuxPow reads a merge-mining proof from r. The parent header is read
// as its fixed preimage only; its version bits are not followed into a
// nested appendix.
func readAuxPow(r io.Reader, pver uint32, msg *MsgAuxPow) error {
	err := msg.CoinbaseTx.BtcDecode(r, pver)
	if err != nil {
		return err
	}

	err = readElement(r, &msg.ParentBlockHash)
	if err != nil {
		return err
	}

	msg.CoinbaseBranch, err = readMerkleBranch(r, "auxpow coinbase branch")
	if err != nil {
		return err
	}
	err = readElement(r, &msg.CoinbaseIndex)
	if err != nil {
		return err
	}

	msg.ChainBranch, err = readMerkleBranch(r, "auxpow chain branch")
	if err != nil {
		return err
	}
	err = readElement(r, &msg.ChainIndex)
	if err != nil {
		return err
	}

	return readBlockHeaderBase(r, pver, &msg.ParentHeader)
}

// writeAuxPow writes a merge-mining proof to w in the order the wire
// demands: coinbase transaction, parent block hash, coinbase branch and
// index, chain branch and index, then the parent header preimage.
func writeAuxPow(w io.Writer, pver uint32, msg *MsgAuxPow) error {
	err := msg.CoinbaseTx.BtcEncode(w, pver)
	if err != nil {
		return err
	}

	err = writeElement(w, &msg.ParentBlockHash)
	if err != nil {
		return err
	}

	err = writeMerkleBranch(w, msg.CoinbaseBranch)
	if err != nil {
		return err
	}
	err = writeElement(w, msg.CoinbaseIndex)
	if err != nil {
		return err
	}

	err = writeMerkleBranch(w, msg.ChainBranch)
	if err != nil {
		return err
	}
	err = writeElement(w, msg.ChainIndex)
	if err != nil {
		return err
	}

	return writeBlockHeaderBase(w, pver, &msg.ParentHeader)
}
