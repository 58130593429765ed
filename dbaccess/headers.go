package dbaccess

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/dogesuite/doged/util/chainhash"
	"github.com/dogesuite/doged/wire"
)

var (
	// headerKeyPrefix namespaces the stored block headers by their block
	// hash.
	headerKeyPrefix = []byte("header/")

	// tipKey holds the hash of the best known stored header.
	tipKey = []byte("headers-tip")
)

// headerKey returns the database key of the header with the given block
// hash.
func headerKey(hash *chainhash.Hash) []byte {
	key := make([]byte, 0, len(headerKeyPrefix)+chainhash.HashSize)
	key = append(key, headerKeyPrefix...)
	key = append(key, hash[:]...)
	return key
}

// StoreBlockHeader stores the given validated block header keyed by its
// block hash. Headers carrying an auxpow are stored with their full
// appendix so the proof survives restarts.
func (ctx *DatabaseContext) StoreBlockHeader(header *wire.BlockHeader) error {
	buf := bytes.NewBuffer(make([]byte, 0, header.SerializeSize()))
	err := header.Serialize(buf)
	if err != nil {
		return errors.Wrap(err, "could not serialize block header")
	}

	blockHash := header.BlockHash()
	log.Tracef("Storing block header %s", blockHash)
	return ctx.put(headerKey(&blockHash), buf.Bytes())
}

// FetchBlockHeader returns the block header with the given block hash, or
// ErrNotFound if no such header was stored.
func (ctx *DatabaseContext) FetchBlockHeader(hash *chainhash.Hash) (*wire.BlockHeader, error) {
	serialized, err := ctx.get(headerKey(hash))
	if err != nil {
		return nil, err
	}

	header := new(wire.BlockHeader)
	err = header.Deserialize(bytes.NewReader(serialized))
	if err != nil {
		return nil, errors.Wrapf(err, "could not deserialize block header %s", hash)
	}
	return header, nil
}

// HasBlockHeader returns whether a header with the given block hash was
// stored.
func (ctx *DatabaseContext) HasBlockHeader(hash *chainhash.Hash) (bool, error) {
	return ctx.has(headerKey(hash))
}

// StoreTip records the given block hash as the best stored header.
func (ctx *DatabaseContext) StoreTip(hash *chainhash.Hash) error {
	return ctx.put(tipKey, hash[:])
}

// FetchTip returns the hash of the best stored header, or ErrNotFound when
// the store was never written.
func (ctx *DatabaseContext) FetchTip() (*chainhash.Hash, error) {
	serialized, err := ctx.get(tipKey)
	if err != nil {
		return nil, err
	}
	return chainhash.NewHash(serialized)
}
