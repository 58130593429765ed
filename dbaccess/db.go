package dbaccess

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// ErrNotFound denotes that the requested entry does not exist in the
// database.
var ErrNotFound = errors.New("dbaccess: entry not found")

// IsNotFoundError checks whether an error is an ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// DatabaseContext carries the underlying database handle the accessors in
// this package operate on.
type DatabaseContext struct {
	ldb *leveldb.DB
}

// New opens the database at the given path, creating it if it does not
// exist yet.
func New(path string) (*DatabaseContext, error) {
	options := opt.Options{
		Compression: opt.NoCompression,
	}
	ldb, err := leveldb.OpenFile(path, &options)
	if ldberrors.IsCorrupted(err) {
		log.Warnf("Database at %s is corrupted, attempting recovery", path)
		ldb, err = leveldb.RecoverFile(path, &options)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not open database at %s", path)
	}

	log.Infof("Database opened at %s", path)
	return &DatabaseContext{ldb: ldb}, nil
}

// NewInMemory returns a database backed by volatile memory only. It is
// meant for tests.
func NewInMemory() (*DatabaseContext, error) {
	ldb, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not open in-memory database")
	}
	return &DatabaseContext{ldb: ldb}, nil
}

// Close closes the underlying database.
func (ctx *DatabaseContext) Close() error {
	err := ctx.ldb.Close()
	if err != nil {
		return errors.Wrap(err, "could not close database")
	}
	return nil
}

// get fetches the value of the given key, translating leveldb's not-found
// error to ErrNotFound.
func (ctx *DatabaseContext) get(key []byte) ([]byte, error) {
	value, err := ctx.ldb.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "key %x", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not get key %x", key)
	}
	return value, nil
}

// put sets the value of the given key.
func (ctx *DatabaseContext) put(key, value []byte) error {
	err := ctx.ldb.Put(key, value, nil)
	if err != nil {
		return errors.Wrapf(err, "could not put key %x", key)
	}
	return nil
}

// has returns whether the given key exists.
func (ctx *DatabaseContext) has(key []byte) (bool, error) {
	exists, err := ctx.ldb.Has(key, nil)
	if err != nil {
		return false, errors.Wrapf(err, "could not check key %x", key)
	}
	return exists, nil
}
