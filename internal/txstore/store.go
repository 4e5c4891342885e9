package txstore

import (
	"context"
	"errors"

	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"
)

// ErrKeyNotFound is returned by KVStore.Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the embedded key-value engine backing one store directory.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value []byte) error

	// Values returns a copy of every value in the store. Order is unspecified.
	Values(ctx context.Context) ([][]byte, error)

	// Close releases the store. The store must not be used afterwards.
	Close() error
}

// StoreOpener opens (creating if needed) the store living at path.
type StoreOpener func(path string) (KVStore, error)

// TransactionSource fetches the on-chain payload of a transaction.
type TransactionSource interface {
	// FetchTransaction returns the payload for signature. The repository calls
	// it at most once per AddTransaction and never retries.
	FetchTransaction(ctx context.Context, signature string) (walletaccount.Transaction, error)
}

// Service is the set of repository operations exposed to handlers.
type Service interface {
	// AddTransaction records signature on the account stored under accountKey.
	AddTransaction(ctx context.Context, policy AccountPolicy, accountKey, signature string) (Outcome, error)

	// ListTransactions returns every transaction of every account.
	ListTransactions(ctx context.Context) ([]walletaccount.Transaction, error)

	// Layout returns the resolved paths of the repository.
	Layout() Layout
}

var _ Service = (*Repository)(nil)
