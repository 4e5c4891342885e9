// Package solana implements txstore.TransactionSource against a Solana RPC
// node using the JSON-RPC getTransaction method.
package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poseidoncompute/poseidonstore/internal/pkg/logger"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/resilience/retry"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/transport/jsonrpc"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/validator"
	"github.com/poseidoncompute/poseidonstore/internal/txstore"
	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	methodGetTransaction = "getTransaction"

	// DefaultCommitment is the commitment level requested unless overridden.
	DefaultCommitment = "confirmed"
)

var (
	// ErrTransactionNotFound is returned when the node has no transaction for
	// the signature at the requested commitment.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidSignature is returned for signatures that are not base58.
	ErrInvalidSignature = errors.New("invalid transaction signature")

	// ErrMalformedResult is returned when the node answers with a result that
	// is not a transaction object.
	ErrMalformedResult = errors.New("malformed getTransaction result")
)

var tracer = otel.Tracer("github.com/poseidoncompute/poseidonstore/internal/infra/blockchain/solana")

// client fetches transactions from a Solana node.
type client struct {
	conn       jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
	retry      retry.Retry
	commitment string
}

// Ensure client implements the txstore.TransactionSource interface at compile time.
var _ txstore.TransactionSource = (*client)(nil)

// config holds the client settings.
type config struct {
	commitment string
	retryOpts  []retry.Option
}

// Option configures the client.
type Option func(*config)

// WithCommitment overrides the commitment level sent with every request.
func WithCommitment(commitment string) Option {
	return func(c *config) {
		c.commitment = commitment
	}
}

// WithRetryOptions tunes the retry policy applied to each fetch. Errors that
// cannot succeed on a later attempt are never retried.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(c *config) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

// NewClient creates a Solana transaction source on top of conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{commitment: DefaultCommitment}
	for _, opt := range opts {
		opt(&cfg)
	}

	retryOpts := append(cfg.retryOpts, retry.WithRetryIf(isRetryable))

	return &client{
		conn:       conn,
		retry:      retry.New(retryOpts...),
		commitment: cfg.commitment,
	}
}

// isRetryable reports whether err may go away on a later attempt.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrMalformedResult),
		errors.Is(err, jsonrpc.ErrProviderReturnedError),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

type fetchRequest struct {
	Signature string `validate:"required,base58"`
}

// FetchTransaction implements txstore.TransactionSource.
func (c *client) FetchTransaction(ctx context.Context, signature string) (tx walletaccount.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "solana.getTransaction", trace.WithAttributes(
		attribute.String("tx.signature", signature),
		attribute.String("rpc.commitment", c.commitment),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int64("tx.slot", int64(tx.Slot)))
		}
		span.End()
	}()

	if err := validator.Validate(fetchRequest{Signature: signature}); err != nil {
		return walletaccount.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	params := map[string]any{
		"encoding":                       "json",
		"commitment":                     c.commitment,
		"maxSupportedTransactionVersion": 0,
	}

	var attempt int
	err = c.retry.Execute(ctx, func() error {
		attempt++

		result, err := c.conn.Fetch(ctx, methodGetTransaction, signature, params)
		if err != nil {
			logger.Warn(ctx, "getTransaction failed", "tx.signature", signature, "attempt", attempt, "error", err)
			return err
		}

		if len(result) == 0 || string(result) == "null" {
			return ErrTransactionNotFound
		}

		var resp TransactionResponse
		if err := json.Unmarshal(result, &resp); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedResult, err)
		}

		tx = resp.toTransaction(signature)
		return nil
	})
	if err != nil {
		return walletaccount.Transaction{}, err
	}

	return tx, nil
}
