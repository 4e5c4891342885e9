package leveldb

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poseidoncompute/poseidonstore/internal/txstore"
	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *client {
	t.Helper()

	c, err := Open(filepath.Join(t.TempDir(), "store"), WithSyncWrites(false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestOpen(t *testing.T) {
	t.Run("creates the store directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "store")

		c, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, c.Close())

		assert.DirExists(t, path)
	})

	t.Run("fails while another handle holds the store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store")

		c, err := Open(path)
		require.NoError(t, err)
		defer c.Close()

		_, err = Open(path)
		assert.Error(t, err)
	})

	t.Run("clamps cache and handles to their minimum", func(t *testing.T) {
		cfg := newConfig(WithCache(1), WithHandles(2))
		assert.Equal(t, minCache, cfg.cache)
		assert.Equal(t, minHandles, cfg.handles)
		assert.True(t, cfg.syncPuts)
	})
}

func TestClient_GetPut(t *testing.T) {
	t.Run("returns ErrKeyNotFound for a missing key", func(t *testing.T) {
		c := openTestStore(t)

		_, err := c.Get(t.Context(), []byte("missing"))
		assert.ErrorIs(t, err, txstore.ErrKeyNotFound)
	})

	t.Run("returns the last value written", func(t *testing.T) {
		c := openTestStore(t)

		require.NoError(t, c.Put(t.Context(), []byte("k"), []byte("v1")))
		require.NoError(t, c.Put(t.Context(), []byte("k"), []byte("v2")))

		v, err := c.Get(t.Context(), []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), v)
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		c := openTestStore(t)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.ErrorIs(t, c.Put(ctx, []byte("k"), []byte("v")), context.Canceled)
		_, err := c.Get(ctx, []byte("k"))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("survives reopening", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store")

		c, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, c.Put(t.Context(), []byte("k"), []byte("v")))
		require.NoError(t, c.Close())

		c, err = Open(path)
		require.NoError(t, err)
		defer c.Close()

		v, err := c.Get(t.Context(), []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), v)
	})
}

func TestClient_Values(t *testing.T) {
	t.Run("returns every value", func(t *testing.T) {
		c := openTestStore(t)

		for _, k := range []string{"b", "a", "c"} {
			require.NoError(t, c.Put(t.Context(), []byte(k), []byte("value-"+k)))
		}

		values, err := c.Values(t.Context())
		require.NoError(t, err)
		assert.ElementsMatch(t, [][]byte{[]byte("value-a"), []byte("value-b"), []byte("value-c")}, values)
	})

	t.Run("returns nothing for an empty store", func(t *testing.T) {
		c := openTestStore(t)

		values, err := c.Values(t.Context())
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		c := openTestStore(t)
		require.NoError(t, c.Put(t.Context(), []byte("k"), []byte("v")))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := c.Values(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// staticSource serves transactions built from their signature.
type staticSource struct{}

func (staticSource) FetchTransaction(_ context.Context, signature string) (walletaccount.Transaction, error) {
	return walletaccount.Transaction{Signature: signature, Slot: 1, Fee: 5000}, nil
}

func TestRepositoryOnLevelDB(t *testing.T) {
	t.Run("records survive closing and reopening the repository", func(t *testing.T) {
		var (
			base        = t.TempDir()
			fingerprint = strings.Repeat("0f", 32)
		)

		u, err := txstore.New(base, fingerprint, staticSource{})
		require.NoError(t, err)
		require.NoError(t, u.InitRepo(t.Context()))

		repo, err := u.InitDatabases(t.Context(), Opener(WithSyncWrites(false)))
		require.NoError(t, err)

		outcome, err := repo.AddTransaction(t.Context(), txstore.CreateIfNone, "account-a", "sig-1")
		require.NoError(t, err)
		assert.Equal(t, txstore.OutcomeInserted, outcome)

		outcome, err = repo.AddTransaction(t.Context(), txstore.ErrIfNone, "account-a", "sig-2")
		require.NoError(t, err)
		assert.Equal(t, txstore.OutcomeInserted, outcome)

		_, err = repo.AddTransaction(t.Context(), txstore.ErrIfNone, "account-b", "sig-3")
		assert.ErrorIs(t, err, txstore.ErrAccountNotFound)

		require.NoError(t, repo.Close())

		assert.DirExists(t, u.Layout().StorePath)
		assert.DirExists(t, u.Layout().LogsPath)

		repo, err = u.InitDatabases(t.Context(), Opener())
		require.NoError(t, err)
		defer repo.Close()

		outcome, err = repo.AddTransaction(t.Context(), txstore.ErrIfNone, "account-a", "sig-2")
		require.NoError(t, err)
		assert.Equal(t, txstore.OutcomeTxAlreadyExists, outcome)

		txs, err := repo.ListTransactions(t.Context())
		require.NoError(t, err)
		require.Len(t, txs, 2)

		signatures := []string{txs[0].Signature, txs[1].Signature}
		assert.ElementsMatch(t, []string{"sig-1", "sig-2"}, signatures)
	})
}
