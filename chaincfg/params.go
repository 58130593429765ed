// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a doge block can
	// have for the main network. It is the value 2^236 - 1 expressed as
	// (2^256 - 1) >> 20.
	mainPowLimit = new(big.Int).Rsh(new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne), 20)

	// testNetPowLimit is the highest proof of work value a doge block
	// can have for the test network. It matches the main network limit.
	testNetPowLimit = new(big.Int).Rsh(new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne), 20)

	// regressionPowLimit is the highest proof of work value a doge block
	// can have for the regression test network. It is the value
	// (2^256 - 1) >> 1.
	regressionPowLimit = new(big.Int).Rsh(new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne), 1)
)

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Params defines a doge network by its parameters. These parameters may be
// used by doge applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.DogeNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit *big.Int

	// SubsidyHalvingInterval is the interval of blocks before the
	// subsidy is reduced.
	SubsidyHalvingInterval int32

	// BIP34Height is the height at which blocks must embed their height
	// in the coinbase and base version 1 blocks are retired.
	BIP34Height int32

	// BIP34Hash is the hash of the block at which BIP34 took effect.
	BIP34Hash *chainhash.Hash

	// BIP65Height is the height at which CHECKLOCKTIMEVERIFY activates
	// and base version 3 blocks are retired.
	BIP65Height int32

	// BIP66Height is the height at which strict DER signatures activate
	// and base version 2 blocks are retired.
	BIP66Height int32

	// CSVHeight is the height at which CHECKSEQUENCEVERIFY and the
	// related relative lock-time rules activate.
	CSVHeight int32

	// WitnessHeight is the height at which the segregated witness rules
	// activate.
	WitnessHeight int32

	// CoinbaseMaturityBegin is the number of blocks required before
	// newly mined coins can be spent, before the maturity transition.
	CoinbaseMaturityBegin uint32

	// CoinbaseMaturity240Height is the height starting at which the
	// coinbase maturity becomes 240 blocks.
	CoinbaseMaturity240Height int32

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// TargetTimespanBegin is the amount of time the difficulty
	// retargeting window looks at, before the timespan transition.
	TargetTimespanBegin time.Duration

	// TargetTimespan60Height is the height starting at which the
	// retargeting timespan becomes 60 seconds.
	TargetTimespan60Height int32

	// AllowMinDifficultyBlocks defines whether the network should allow
	// minimum difficulty blocks after a long enough gap. This is only
	// ever true for test networks.
	AllowMinDifficultyBlocks bool

	// AuxPowChainID is this chain's identifier within merged mining.
	AuxPowChainID int32

	// StrictChainID defines whether non-legacy headers must carry
	// AuxPowChainID and merge-mining parents must come from a foreign
	// chain. Legacy version encodings are retired by
	// DisallowLegacyBlocksHeight, not by this flag.
	StrictChainID bool

	// DigishieldHeight is the height at which the digishield difficulty
	// calculation activates.
	DigishieldHeight int32

	// SimplifiedRewardsHeight is the height at which block rewards stop
	// being derived from the previous block hash and become
	// deterministic.
	SimplifiedRewardsHeight int32

	// DisallowLegacyBlocksHeight is the height starting at which blocks
	// with legacy version encodings are rejected.
	DisallowLegacyBlocksHeight int32

	// MinimumChainWork is the amount of total work the best chain should
	// have at minimum.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block whose ancestors' signatures are
	// assumed valid by default.
	DefaultAssumeValid *chainhash.Hash

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// Mempool parameters
	RelayNonStdTxs bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// TargetTimespan returns the difficulty retargeting timespan in force at
// the given height: TargetTimespanBegin below TargetTimespan60Height and
// 60 seconds from that height on.
func (p *Params) TargetTimespan(height int32) time.Duration {
	if height >= p.TargetTimespan60Height {
		return 60 * time.Second
	}
	return p.TargetTimespanBegin
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets at the given height.
func (p *Params) DifficultyAdjustmentInterval(height int32) int64 {
	return int64(p.TargetTimespan(height) / p.TargetTimePerBlock)
}

// CoinbaseMaturity returns the number of blocks a coinbase output is
// unspendable for at the given height.
func (p *Params) CoinbaseMaturity(height int32) uint32 {
	if height >= p.CoinbaseMaturity240Height {
		return 240
	}
	return p.CoinbaseMaturityBegin
}

// MainNetParams defines the network parameters for the main doge network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.Mainnet,
	DefaultPort: "22556",

	// Chain parameters
	GenesisBlock:               &genesisBlock,
	GenesisHash:                &genesisHash,
	PowLimit:                   mainPowLimit,
	SubsidyHalvingInterval:     100000,
	BIP34Height:                1034383,
	BIP34Hash:                  newHashFromStr("80d1364201e5df97e696c03bdd24dc885e8617b9de51e453c10a4f629b1e797a"),
	BIP65Height:                3464751,
	BIP66Height:                1034383,
	CSVHeight:                  0,
	WitnessHeight:              0,
	CoinbaseMaturityBegin:      30,
	CoinbaseMaturity240Height:  145000,
	TargetTimePerBlock:         time.Minute,
	TargetTimespanBegin:        4 * time.Hour,
	TargetTimespan60Height:     145000,
	AllowMinDifficultyBlocks:   false,
	AuxPowChainID:              0x0062,
	StrictChainID:              true,
	DigishieldHeight:           145000,
	SimplifiedRewardsHeight:    145000,
	DisallowLegacyBlocksHeight: 371337,
	MinimumChainWork:           hexToBigInt("0000000000000000000000000000000000000000000002f090e3e57191fd0703"),
	DefaultAssumeValid:         newHashFromStr("195a83b091fb3ee7ecb56f2e63d01709293f57f971ccf373d93890c8dc1033db"),

	Checkpoints: []Checkpoint{
		{0, newHashFromStr("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691")},
		{104679, newHashFromStr("35eb87ae90d44b98898fec8c39577b76cb1eb08e1261cfc10706c8ce9a1d01cf")},
		{145000, newHashFromStr("cc47cae70d7c5c92828d3214a266331dde59087d4a39071fa76ddfff9b7bde72")},
		{371337, newHashFromStr("60323982f9c5ff1b5a954eac9dc1269352835f47c2c5222691d80f0d50dcf053")},
		{450000, newHashFromStr("d279277f8f846a224d776450aa04da3cf978991a182c6f3075db4c48b173bbd7")},
		{771275, newHashFromStr("1b7d789ed82cbdc640952e7e7a54966c6488a32eaad54fc39dff83f310dbaaed")},
		{1000000, newHashFromStr("6aae55bea74235f0c80bd066349d4440c31f2d0f27d54265ecd484d8c1d11b47")},
		{1250000, newHashFromStr("00c7a442055c1a990e11eea5371ca5c1c02a0677b33cc88ec728c45edc4ec060")},
		{1500000, newHashFromStr("f1d32d6920de7b617d51e74bdf4e58adccaa582ffdc8657464454f16a952fca6")},
		{1750000, newHashFromStr("5c8e7327984f0d6f59447d89d143e5f6eafc524c82ad95d176c5cec082ae2001")},
		{2000000, newHashFromStr("9914f0e82e39bbf21950792e8816620d71b9965bdbbc14e72a95e3ab9618fea8")},
		{2031142, newHashFromStr("893297d89afb7599a3c571ca31a3b80e8353f4cf39872400ad0f57d26c4c5d42")},
		{2510150, newHashFromStr("77e3f4a4bcb4a2c15e8015525e3d15b466f6c022f6ca82698f329edef7d9777e")},
	},

	// Mempool parameters
	RelayNonStdTxs: false,

	// Address encoding magics
	PubKeyHashAddrID: 30,  // starts with D
	ScriptHashAddrID: 22,  // starts with 9 or A
	PrivateKeyID:     158, // starts with 6 (uncompressed) or Q (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98}, // starts with dgpv
	HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd}, // starts with dgub
}

// TestNetParams defines the network parameters for the test doge network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         wire.Testnet,
	DefaultPort: "44556",

	// Chain parameters
	GenesisBlock:               &testNetGenesisBlock,
	GenesisHash:                &testNetGenesisHash,
	PowLimit:                   testNetPowLimit,
	SubsidyHalvingInterval:     100000,
	BIP34Height:                708658,
	BIP34Hash:                  newHashFromStr("21b8b97dcdb94caa67c7f8f6dbf22e61e0cfe0e46e1fff3528b22864659e9b38"),
	BIP65Height:                1854705,
	BIP66Height:                708658,
	CSVHeight:                  0,
	WitnessHeight:              0,
	CoinbaseMaturityBegin:      30,
	CoinbaseMaturity240Height:  145000,
	TargetTimePerBlock:         time.Minute,
	TargetTimespanBegin:        4 * time.Hour,
	TargetTimespan60Height:     145000,
	AllowMinDifficultyBlocks:   true,
	AuxPowChainID:              0x0062,
	StrictChainID:              false,
	DigishieldHeight:           145000,
	SimplifiedRewardsHeight:    145000,
	DisallowLegacyBlocksHeight: 158100,
	MinimumChainWork:           hexToBigInt("00000000000000000000000000000000000000000000000000001030d1382ade"),
	DefaultAssumeValid:         newHashFromStr("6943eaeaba98dc7d09f7e73398daccb4abcabb18b66c8c875e52b07638d93951"),

	Checkpoints: []Checkpoint{
		{0, newHashFromStr("bb0a78264637406b6360aad926284d544d7049f45189db5664f3c4d07350559e")},
		{483173, newHashFromStr("a804201ca0aceb7e937ef7a3c613a9b7589245b10cc095148c4ce4965b0b73b5")},
		{591117, newHashFromStr("5f6b93b2c28cedf32467d900369b8be6700f0649388a7dbfd3ebd4a01b1ffad8")},
		{658924, newHashFromStr("ed6c8324d9a77195ee080f225a0fca6346495e08ded99bcda47a8eea5a8a620b")},
		{703635, newHashFromStr("839fa54617adcd582d53030a37455c14a87a806f6615aa8213f13e196230ff7f")},
		{1000000, newHashFromStr("1fe4d44ea4d1edb031f52f0d7c635db8190dc871a190654c41d2450086b8ef0e")},
		{1202214, newHashFromStr("a2179767a87ee4e95944703976fee63578ec04fa3ac2fc1c9c2c83587d096977")},
	},

	// Mempool parameters
	RelayNonStdTxs: true,

	// Address encoding magics
	PubKeyHashAddrID: 113, // starts with n
	ScriptHashAddrID: 196, // starts with 2
	PrivateKeyID:     241, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

// RegressionNetParams defines the network parameters for the regression
// test doge network. Not to be confused with the test network, this network
// is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.Regtest,
	DefaultPort: "18444",

	// Chain parameters
	GenesisBlock:               &regTestGenesisBlock,
	GenesisHash:                &regTestGenesisHash,
	PowLimit:                   regressionPowLimit,
	SubsidyHalvingInterval:     150,
	BIP34Height:                100000000, // Not active - Permit ver 1 blocks
	BIP34Hash:                  nil,
	BIP65Height:                1251, // Used by regression tests
	BIP66Height:                1251, // Used by regression tests
	CSVHeight:                  0,
	WitnessHeight:              0,
	CoinbaseMaturityBegin:      60,
	CoinbaseMaturity240Height:  100000,
	TargetTimePerBlock:         time.Second,
	TargetTimespanBegin:        time.Second,
	TargetTimespan60Height:     100000,
	AllowMinDifficultyBlocks:   true,
	AuxPowChainID:              0x0062,
	StrictChainID:              true,
	DigishieldHeight:           10,
	SimplifiedRewardsHeight:    0,
	DisallowLegacyBlocksHeight: 20,
	MinimumChainWork:           big.NewInt(0),
	DefaultAssumeValid:         nil,

	Checkpoints: []Checkpoint{
		{0, newHashFromStr("3d2160a3b5dc4a9d62e7e66a295f70313ac808440ef7400d6c0772171ce973a5")},
	},

	// Mempool parameters
	RelayNonStdTxs: true,

	// Address encoding magics
	PubKeyHashAddrID: 111, // starts with m or n
	ScriptHashAddrID: 196, // starts with 2
	PrivateKeyID:     239, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes. Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexToBigInt converts the passed hex string into a big.Int. Like
// newHashFromStr it panics on invalid input and exists for hard-coded
// chain work values only.
func hexToBigInt(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}
