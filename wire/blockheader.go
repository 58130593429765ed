// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/util/powhash"
)

// BlockHeaderLen is the number of bytes of the fixed block header preimage:
// Version 4 bytes + PrevBlock and MerkleRoot hashes + Timestamp 4 bytes +
// Bits 4 bytes + Nonce 4 bytes. Both the block hash and the proof-of-work
// hash cover exactly these bytes; the auxpow appendix never contributes.
const BlockHeaderLen = 16 + (chainhash.HashSize * 2)

const (
	// VersionAuxPow is the version bit that flags the presence of an
	// auxpow appendix after the fixed header fields.
	VersionAuxPow int32 = 1 << 8

	// VersionChainStart is the value of the lowest bit of the chain
	// identifier within the version.
	VersionChainStart int32 = 1 << 16
)

// BlockHeader defines information about a block and is used in the doge
// block (MsgBlock) and headers messages. When the auxpow version bit is set,
// the fixed fields are followed on the wire and on disk by a merge-mining
// proof; see MsgAuxPow.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol
	// version. The low byte is the base version, bit 8 flags an auxpow
	// appendix and the bits from 16 up hold the chain identifier.
	Version int32

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created. This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32

	// AuxPow is the merge-mining proof carried alongside the fixed
	// fields. It is non-nil exactly when the auxpow version bit is set;
	// decoding enforces that and encoding requires it.
	AuxPow *MsgAuxPow
}

// BaseVersion returns the low byte of the version, which is the block
// version before any of the merge-mining modifiers.
func (h *BlockHeader) BaseVersion() int32 {
	return h.Version & 0xff
}

// ChainID returns the chain identifier encoded in the version. Merge mining
// uses it to keep parent and auxiliary chains apart.
func (h *BlockHeader) ChainID() int32 {
	return h.Version >> 16
}

// IsAuxPow returns whether the version flags an auxpow appendix.
func (h *BlockHeader) IsAuxPow() bool {
	return h.Version&VersionAuxPow != 0
}

// IsLegacy returns whether the version is one of the encodings that predate
// merge mining: full version 1, or version 2 without a chain identifier.
func (h *BlockHeader) IsLegacy() bool {
	return h.Version == 1 || (h.Version == 2 && h.ChainID() == 0)
}

// SetBaseVersion sets the base version and chain identifier, clearing any
// merge-mining modifiers. It must not be called on a header that already
// carries an auxpow.
func (h *BlockHeader) SetBaseVersion(baseVersion, chainID int32) {
	if baseVersion < 1 || baseVersion >= VersionAuxPow {
		panic("SetBaseVersion: base version out of range")
	}
	if h.IsAuxPow() {
		panic("SetBaseVersion: called on auxpow header")
	}
	h.Version = baseVersion | chainID*VersionChainStart
}

// SetAuxPow attaches the given merge-mining proof to the header and flips
// the auxpow version bit accordingly. A nil proof clears the bit.
func (h *BlockHeader) SetAuxPow(auxPow *MsgAuxPow) {
	if auxPow != nil {
		h.Version |= VersionAuxPow
	} else {
		h.Version &^= VersionAuxPow
	}
	h.AuxPow = auxPow
}

// BlockHash computes the block identifier hash for the given block header.
// Only the fixed preimage participates; the auxpow appendix is deliberately
// excluded so the identifier of a block never depends on its proof.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number
	// of transactions. Ignore the error returns since there is no way
	// the encode could fail except being out of memory which would cause
	// a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeaderBase(buf, 0, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// PowHash computes the scrypt proof-of-work hash over the fixed 80-byte
// header preimage. For merge-mined blocks the proof of work is computed on
// the parent header instead; that selection belongs to the validation layer.
func (h *BlockHeader) PowHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeaderBase(buf, 0, h)

	return powhash.ScryptHash(buf.Bytes())
}

// BtcDecode decodes r using the doge protocol encoding into the receiver.
// See Deserialize for decoding block headers stored to disk, such as in a
// database, as opposed to decoding block headers from the wire.
func (h *BlockHeader) BtcDecode(r io.Reader, pver uint32) error {
	return readBlockHeader(r, pver, h)
}

// BtcEncode encodes the receiver to w using the doge protocol encoding.
// See Serialize for encoding block headers to be stored to disk, such as in
// a database, as opposed to encoding block headers for the wire.
func (h *BlockHeader) BtcEncode(w io.Writer, pver uint32) error {
	return writeBlockHeader(w, pver, h)
}

// Deserialize decodes a block header from r into the receiver using a format
// that is suitable for long-term storage such as a database while respecting
// the Version field. When the version flags an auxpow, the appendix is
// decoded as well.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	// At the current time, there is no difference between the wire encoding
	// at protocol version 0 and the stable long-term storage format. As
	// a result, make use of readBlockHeader.
	return readBlockHeader(r, 0, h)
}

// Serialize encodes the receiver to w using a format
// that is suitable for long-term storage such as a database while respecting
// the Version field. When the version flags an auxpow, the appendix is
// encoded as well.
func (h *BlockHeader) Serialize(w io.Writer) error {
	// At the current time, there is no difference between the wire encoding
	// at protocol version 0 and the stable long-term storage format. As
	// a result, make use of writeBlockHeader.
	return writeBlockHeader(w, 0, h)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header, including any auxpow appendix.
func (h *BlockHeader) SerializeSize() int {
	if h.AuxPow == nil {
		return BlockHeaderLen
	}
	return BlockHeaderLen + h.AuxPow.SerializeSize()
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce used to
// generate the block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeaderBase reads the fixed 80-byte portion of a doge block
// header from r, leaving any auxpow appendix in the stream.
func readBlockHeaderBase(r io.Reader, pver uint32, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
}

// readBlockHeader reads a doge block header from r, including the auxpow
// appendix when the decoded version calls for one. See Deserialize for
// decoding block headers stored to disk, such as in a database, as opposed
// to decoding from the wire.
func readBlockHeader(r io.Reader, pver uint32, bh *BlockHeader) error {
	err := readBlockHeaderBase(r, pver, bh)
	if err != nil {
		return err
	}

	if !bh.IsAuxPow() {
		bh.AuxPow = nil
		return nil
	}

	auxPow := new(MsgAuxPow)
	err = readAuxPow(r, pver, auxPow)
	if err != nil {
		return err
	}
	bh.AuxPow = auxPow
	return nil
}

// writeBlockHeaderBase writes the fixed 80-byte portion of a doge block
// header to w. This is the exact hash and proof-of-work preimage.
func writeBlockHeaderBase(w io.Writer, pver uint32, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, bh.Bits, bh.Nonce)
}

// writeBlockHeader writes a doge block header to w, including the auxpow
// appendix when the version calls for one. See Serialize for encoding block
// headers to be stored to disk, such as in a database, as opposed to
// encoding for the wire.
func writeBlockHeader(w io.Writer, pver uint32, bh *BlockHeader) error {
	err := writeBlockHeaderBase(w, pver, bh)
	if err != nil {
		return err
	}

	if !bh.IsAuxPow() {
		if bh.AuxPow != nil {
			str := "auxpow attached to header without the auxpow " +
				"version bit"
			return messageError("BlockHeader.Serialize", str)
		}
		return nil
	}
	if bh.AuxPow == nil {
		str := "header version flags an auxpow but none is attached"
		return messageError("BlockHeader.Serialize", str)
	}

	return writeAuxPow(w, pver, bh.AuxPow)
}
