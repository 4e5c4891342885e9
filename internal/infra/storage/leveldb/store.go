package leveldb

import (
	"bytes"
	"context"
	"errors"

	"github.com/poseidoncompute/poseidonstore/internal/txstore"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
)

// Get implements txstore.KVStore. A missing key is reported as
// txstore.ErrKeyNotFound.
func (c *client) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := c.db.Get(key, nil)
	if errors.Is(err, goleveldb.ErrNotFound) {
		return nil, txstore.ErrKeyNotFound
	}
	return value, err
}

// Put implements txstore.KVStore.
func (c *client) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Put(key, value, c.write)
}

// Values implements txstore.KVStore by walking a snapshot of the whole
// keyspace. Iteration stops early if ctx is done.
func (c *client) Values(ctx context.Context) ([][]byte, error) {
	iter := c.db.NewIterator(nil, nil)
	defer iter.Release()

	var values [][]byte
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The iterator reuses its buffers.
		values = append(values, bytes.Clone(iter.Value()))
	}

	if err := iter.Error(); err != nil {
		return nil, err
	}
	return values, nil
}
