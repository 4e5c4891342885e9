// Package leveldb implements txstore.KVStore on top of goleveldb. Each store
// owns one directory on disk.
package leveldb

import (
	"github.com/poseidoncompute/poseidonstore/internal/txstore"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
	lderrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	// minCache is the minimum memory in MiB given to the read and write caches.
	minCache = 16

	// minHandles is the minimum number of open file handles.
	minHandles = 16

	bloomBitsPerKey = 10
)

type client struct {
	path  string
	db    *goleveldb.DB
	write *opt.WriteOptions
}

var _ txstore.KVStore = (*client)(nil)

// config holds the engine settings.
type config struct {
	cache    int // MiB, split between block cache and write buffers
	handles  int
	syncPuts bool
}

// Option configures the store.
type Option func(*config)

// WithCache sets the memory in MiB given to the engine caches. Values below
// 16 are raised to 16.
func WithCache(mib int) Option {
	return func(c *config) {
		c.cache = max(mib, minCache)
	}
}

// WithHandles sets the number of file handles kept open. Values below 16 are
// raised to 16.
func WithHandles(n int) Option {
	return func(c *config) {
		c.handles = max(n, minHandles)
	}
}

// WithSyncWrites controls whether every Put is flushed to disk before
// returning. It is enabled by default.
func WithSyncWrites(b bool) Option {
	return func(c *config) {
		c.syncPuts = b
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		cache:    minCache,
		handles:  minHandles,
		syncPuts: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) options() *opt.Options {
	return &opt.Options{
		Filter:                 filter.NewBloomFilter(bloomBitsPerKey),
		OpenFilesCacheCapacity: c.handles,
		BlockCacheCapacity:     c.cache / 2 * opt.MiB,
		WriteBuffer:            c.cache / 4 * opt.MiB,
	}
}

// Open opens the store at path, creating the directory if needed. A store
// whose manifest is corrupted is recovered in place.
func Open(path string, opts ...Option) (*client, error) {
	cfg := newConfig(opts...)

	db, err := goleveldb.OpenFile(path, cfg.options())
	if lderrors.IsCorrupted(err) {
		db, err = goleveldb.RecoverFile(path, cfg.options())
	}
	if err != nil {
		return nil, err
	}

	return &client{
		path:  path,
		db:    db,
		write: &opt.WriteOptions{Sync: cfg.syncPuts},
	}, nil
}

// Opener returns a txstore.StoreOpener opening stores with opts.
func Opener(opts ...Option) txstore.StoreOpener {
	return func(path string) (txstore.KVStore, error) {
		c, err := Open(path, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func (c *client) Close() error {
	return c.db.Close()
}
