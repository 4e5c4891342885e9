package txstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidoncompute/poseidonstore/internal/pkg/logger"
	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// notInitializedMarker is the description of the error returned when
// AddTransaction runs without an open accounts store.
const notInitializedMarker = "TX_STORE_NOT_INITIALIZED"

// AddTransaction records the transaction identified by signature on the
// account stored under accountKey.
//
// If the record already holds signature, it returns OutcomeTxAlreadyExists
// without fetching. If no record exists and policy is ErrIfNone, it fails
// with ErrAccountNotFound without fetching or writing. Otherwise the payload
// is fetched once from the TransactionSource, merged into the record
// (created when absent) and written back, and OutcomeInserted is returned.
func (r *Repository) AddTransaction(ctx context.Context, policy AccountPolicy, accountKey, signature string) (outcome Outcome, err error) {
	ctx, span := tracer.Start(ctx, "txstore.AddTransaction", trace.WithAttributes(
		attribute.String("account.key", accountKey),
		attribute.String("tx.signature", signature),
		attribute.String("account.policy", policy.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("outcome", outcome.String()))
		}
		span.End()
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.store == nil {
		return Outcome{}, storeError(ErrCollectionNotInitialized, notInitializedMarker, nil)
	}

	unlock, err := r.locks.Lock(ctx, accountKey)
	if err != nil {
		return Outcome{}, fmt.Errorf("waiting for account %s: %w", accountKey, err)
	}
	defer unlock()

	ctx = logger.Derive(ctx, "account.key", accountKey, "tx.signature", signature)

	account, err := r.loadAccount(ctx, accountKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		if policy != CreateIfNone {
			return Outcome{}, storeError(ErrAccountNotFound, fmt.Sprintf("account %s not found", accountKey), nil)
		}
		account = walletaccount.New(accountKey)
	case err != nil:
		return Outcome{}, err
	case account.HasTransaction(signature):
		r.metrics.duplicate.Add(ctx, 1)
		logger.Debug(ctx, "transaction already recorded")
		return OutcomeTxAlreadyExists, nil
	}

	tx, err := r.source.FetchTransaction(ctx, signature)
	if err != nil {
		return Outcome{}, storeError(ErrFetchTransaction, fmt.Sprintf("unable to fetch transaction %s", signature), err)
	}
	r.metrics.fetched.Add(ctx, 1)

	account.AddTransaction(signature, tx)
	if err := r.saveAccount(ctx, account); err != nil {
		return Outcome{}, err
	}

	r.metrics.inserted.Add(ctx, 1)
	logger.Info(ctx, "transaction recorded", "account.transactions", len(account.Transactions()))
	return OutcomeInserted, nil
}

// ListTransactions returns every transaction of every account in the
// repository. The order is unspecified.
func (r *Repository) ListTransactions(ctx context.Context) (txs []walletaccount.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "txstore.ListTransactions")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("transactions.count", len(txs)))
		}
		span.End()
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.store == nil {
		return nil, storeError(ErrStoreNotFound, r.layout.StorePath, nil)
	}

	values, err := r.store.Values(ctx)
	if err != nil {
		return nil, storeError(ErrDatabase, fmt.Sprintf("unable to iterate %s", r.layout.StorePath), err)
	}

	txs = make([]walletaccount.Transaction, 0, len(values))
	for _, raw := range values {
		account, err := walletaccount.Decode(raw)
		if err != nil {
			return nil, storeError(ErrDeserializeAccount, "unable to decode account record", err)
		}

		for _, tx := range account.Transactions() {
			txs = append(txs, tx)
		}
	}

	return txs, nil
}

// loadAccount reads and decodes the record stored under accountKey. It
// returns ErrKeyNotFound untouched when there is none.
func (r *Repository) loadAccount(ctx context.Context, accountKey string) (*walletaccount.Account, error) {
	raw, err := r.store.Get(ctx, []byte(accountKey))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, err
		}
		return nil, storeError(ErrDatabase, fmt.Sprintf("unable to read account %s", accountKey), err)
	}

	account, err := walletaccount.Decode(raw)
	if err != nil {
		return nil, storeError(ErrDeserializeAccount, fmt.Sprintf("unable to decode account %s", accountKey), err)
	}

	if account.AccountKey() != accountKey {
		return nil, storeError(ErrDeserializeAccount,
			fmt.Sprintf("record stored under %s belongs to %s", accountKey, account.AccountKey()), nil)
	}

	return account, nil
}

// saveAccount encodes account and writes it under its key.
func (r *Repository) saveAccount(ctx context.Context, account *walletaccount.Account) error {
	raw, err := walletaccount.Encode(account)
	if err != nil {
		return storeError(ErrSerializeAccount, fmt.Sprintf("unable to encode account %s", account.AccountKey()), err)
	}

	if err := r.store.Put(ctx, []byte(account.AccountKey()), raw); err != nil {
		return storeError(ErrDatabase, fmt.Sprintf("unable to write account %s", account.AccountKey()), err)
	}

	return nil
}
