package txstore

import (
	"bytes"
	"context"
	"errors"
	"sync"
)

var errStoreClosed = errors.New("store closed")

// memStore is an in-memory KVStore used by the repository tests.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	puts   int
	closed bool
}

var _ KVStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(_ context.Context, key []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errStoreClosed
	}

	v, ok := s.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (s *memStore) Put(_ context.Context, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errStoreClosed
	}

	s.data[string(key)] = bytes.Clone(value)
	s.puts++
	return nil
}

func (s *memStore) Values(context.Context) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errStoreClosed
	}

	values := make([][]byte, 0, len(s.data))
	for _, v := range s.data {
		values = append(values, bytes.Clone(v))
	}
	return values, nil
}

func (s *memStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *memStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.puts
}

// openerFor returns a StoreOpener handing out the given stores by path.
func openerFor(stores map[string]KVStore) StoreOpener {
	return func(path string) (KVStore, error) {
		s, ok := stores[path]
		if !ok {
			return nil, errors.New("unexpected path " + path)
		}
		return s, nil
	}
}
