// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg_test

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/dogesuite/doged/blockchain"
	. "github.com/dogesuite/doged/chaincfg"
)

// TestGenesisBlock tests the genesis block of the main network for
// validity by checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	// Encode the genesis block to raw bytes.
	var buf bytes.Buffer
	err := MainNetParams.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := MainNetParams.GenesisBlock.BlockHash()
	if !MainNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(MainNetParams.GenesisHash))
	}

	wantHash := "1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"
	if hash.String() != wantHash {
		t.Fatalf("TestGenesisBlock: wrong hash string - got %v, want %v",
			hash, wantHash)
	}

	wantMerkleRoot := "5b2a3f53f605d62c53e62932dac6925e3d74afa5a4b459745c36d42d0ed26a69"
	if got := MainNetParams.GenesisBlock.Header.MerkleRoot.String(); got != wantMerkleRoot {
		t.Fatalf("TestGenesisBlock: wrong merkle root - got %v, want %v",
			got, wantMerkleRoot)
	}
}

// TestTestNetGenesisBlock tests the genesis block of the test network for
// validity by checking the hash.
func TestTestNetGenesisBlock(t *testing.T) {
	hash := TestNetParams.GenesisBlock.BlockHash()
	if !TestNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestTestNetGenesisBlock: Genesis block hash does "+
			"not appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(TestNetParams.GenesisHash))
	}

	wantHash := "bb0a78264637406b6360aad926284d544d7049f45189db5664f3c4d07350559e"
	if hash.String() != wantHash {
		t.Fatalf("TestTestNetGenesisBlock: wrong hash string - got %v, "+
			"want %v", hash, wantHash)
	}
}

// TestRegTestGenesisBlock tests the genesis block of the regression test
// network for validity by checking the hash.
func TestRegTestGenesisBlock(t *testing.T) {
	hash := RegressionNetParams.GenesisBlock.BlockHash()
	if !RegressionNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestRegTestGenesisBlock: Genesis block hash does "+
			"not appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(RegressionNetParams.GenesisHash))
	}

	wantHash := "3d2160a3b5dc4a9d62e7e66a295f70313ac808440ef7400d6c0772171ce973a5"
	if hash.String() != wantHash {
		t.Fatalf("TestRegTestGenesisBlock: wrong hash string - got %v, "+
			"want %v", hash, wantHash)
	}
}

// TestGenesisMerkleRoots recomputes the merkle tree of every genesis block
// and checks it against the hard-coded merkle root.
func TestGenesisMerkleRoots(t *testing.T) {
	tests := []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams}

	for _, params := range tests {
		merkles := blockchain.BuildMerkleTreeStore(params.GenesisBlock.Transactions)
		calculated := merkles[len(merkles)-1]
		want := &params.GenesisBlock.Header.MerkleRoot
		if !calculated.IsEqual(want) {
			t.Errorf("%s: calculated merkle root %v does not match "+
				"header %v", params.Name, calculated, want)
		}
	}
}

// genesisBlockBytes are the wire encoded bytes for the genesis block of
// the main network.
var genesisBlockBytes = []byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x69, 0x6a, 0xd2, 0x0e, /* |....ij..| */
	0x2d, 0xd4, 0x36, 0x5c, 0x74, 0x59, 0xb4, 0xa4, /* |..6.tY..| */
	0xa5, 0xaf, 0x74, 0x3d, 0x5e, 0x92, 0xc6, 0xda, /* |..t.....| */
	0x32, 0x29, 0xe6, 0x53, 0x2c, 0xd6, 0x05, 0xf6, /* |2..S....| */
	0x53, 0x3f, 0x2a, 0x5b, 0x24, 0xa6, 0xa1, 0x52, /* |S......R| */
	0xf0, 0xff, 0x0f, 0x1e, 0x67, 0x86, 0x01, 0x00, /* |....g...| */
	0x01, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, /* |........| */
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, /* |........| */
	0xff, 0xff, 0x10, 0x04, 0xff, 0xff, 0x00, 0x1d, /* |........| */
	0x01, 0x04, 0x08, 0x4e, 0x69, 0x6e, 0x74, 0x6f, /* |...Ninto| */
	0x6e, 0x64, 0x6f, 0xff, 0xff, 0xff, 0xff, 0x01, /* |ndo.....| */
	0x00, 0x58, 0x85, 0x0c, 0x02, 0x00, 0x00, 0x00, /* |.X......| */
	0x43, 0x41, 0x04, 0x01, 0x84, 0x71, 0x0f, 0xa6, /* |CA...q..| */
	0x89, 0xad, 0x50, 0x23, 0x69, 0x0c, 0x80, 0xf3, /* |..P.i...| */
	0xa4, 0x9c, 0x8f, 0x13, 0xf8, 0xd4, 0x5b, 0x8c, /* |........| */
	0x85, 0x7f, 0xbc, 0xbc, 0x8b, 0xc4, 0xa8, 0xe4, /* |........| */
	0xd3, 0xeb, 0x4b, 0x10, 0xf4, 0xd4, 0x60, 0x4f, /* |..K....O| */
	0xa0, 0x8d, 0xce, 0x60, 0x1a, 0xaf, 0x0f, 0x47, /* |.......G| */
	0x02, 0x16, 0xfe, 0x1b, 0x51, 0x85, 0x0b, 0x4a, /* |....Q..J| */
	0xcf, 0x21, 0xb1, 0x79, 0xc4, 0x50, 0x70, 0xac, /* |...y.Pp.| */
	0x7b, 0x03, 0xa9, 0xac, 0x00, 0x00, 0x00, 0x00, /* |........| */
}
