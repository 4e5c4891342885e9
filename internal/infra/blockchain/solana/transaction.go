package solana

import (
	"encoding/json"

	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"
)

type (
	// TransactionResponse is the result of getTransaction with the json encoding.
	TransactionResponse struct {
		Slot        uint64            `json:"slot"`
		BlockTime   *int64            `json:"blockTime"`
		Meta        *MetaResponse     `json:"meta"`
		Transaction TransactionObject `json:"transaction"`
	}

	// MetaResponse holds the execution status of a transaction.
	MetaResponse struct {
		Err         json.RawMessage `json:"err"`
		Fee         uint64          `json:"fee"`
		LogMessages []string        `json:"logMessages"`
	}

	// TransactionObject is the signed transaction itself.
	TransactionObject struct {
		Signatures []string `json:"signatures"`
		Message    struct {
			AccountKeys []string `json:"accountKeys"`
		} `json:"message"`
	}
)

// failure returns the compact JSON form of the execution error, or an empty
// string when the transaction succeeded.
func (m *MetaResponse) failure() string {
	if m == nil || len(m.Err) == 0 || string(m.Err) == "null" {
		return ""
	}
	return string(m.Err)
}

// toTransaction converts the RPC payload into the stored form. signature is
// the one requested, which is the first signature of the transaction.
func (r TransactionResponse) toTransaction(signature string) walletaccount.Transaction {
	tx := walletaccount.Transaction{
		Signature:   signature,
		Slot:        r.Slot,
		BlockTime:   r.BlockTime,
		Err:         r.Meta.failure(),
		AccountKeys: r.Transaction.Message.AccountKeys,
	}

	if r.Meta != nil {
		tx.Fee = r.Meta.Fee
		tx.LogMessages = r.Meta.LogMessages
	}

	return tx
}
