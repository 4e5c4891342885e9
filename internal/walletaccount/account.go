// Package walletaccount defines the persisted record of a tracked wallet
// account: its metadata and the on-chain transactions known for it.
package walletaccount

import (
	"maps"
	"slices"
)

// Transaction is the on-chain payload of a transaction as returned by the
// transaction source. The store treats it as an opaque value.
type Transaction struct {
	Signature   string   // Base58 transaction signature
	Slot        uint64   // Slot the transaction was processed in
	BlockTime   *int64   // Estimated production time (unix seconds), if known
	Fee         uint64   // Fee charged, in lamports
	Err         string   // Execution error reported by the cluster; empty on success
	AccountKeys []string // Accounts referenced by the transaction message
	LogMessages []string // Program log output
}

// Succeeded reports whether the transaction executed without error.
func (t Transaction) Succeeded() bool {
	return t.Err == ""
}

// Account is the record stored for one tracked public key.
//
// Field order is significant: it is the order used by the binary encoding.
type Account struct {
	createdAt     Timestamp
	updatedAt     Timestamp
	displayName   *string
	accountKey    string
	notifications []string
	nextNotifyAt  *Timestamp
	userData      map[string][]byte
	transactions  map[string]Transaction
}

// New creates an empty record for accountKey with both timestamps set to now.
func New(accountKey string) *Account {
	now := Now()

	return &Account{
		createdAt:     now,
		updatedAt:     now,
		accountKey:    accountKey,
		notifications: make([]string, 0),
		userData:      make(map[string][]byte),
		transactions:  make(map[string]Transaction),
	}
}

func (a *Account) CreatedAt() Timestamp { return a.createdAt }

func (a *Account) UpdatedAt() Timestamp { return a.updatedAt }

// DisplayName returns the user-set label and whether one was set.
func (a *Account) DisplayName() (string, bool) {
	if a.displayName == nil {
		return "", false
	}
	return *a.displayName, true
}

// AccountKey returns the public key this record belongs to.
func (a *Account) AccountKey() string { return a.accountKey }

// Notifications returns a copy of the pending notification queue, oldest first.
func (a *Account) Notifications() []string {
	return slices.Clone(a.notifications)
}

// NextNotifyAt returns the reserved notification deadline, if any.
func (a *Account) NextNotifyAt() (Timestamp, bool) {
	if a.nextNotifyAt == nil {
		return Timestamp{}, false
	}
	return *a.nextNotifyAt, true
}

// UserData returns a copy of the user data map.
func (a *Account) UserData() map[string][]byte {
	return maps.Clone(a.userData)
}

// Transactions returns a copy of the signature to payload map.
func (a *Account) Transactions() map[string]Transaction {
	return maps.Clone(a.transactions)
}

// HasTransaction reports whether signature is already recorded.
func (a *Account) HasTransaction(signature string) bool {
	_, ok := a.transactions[signature]
	return ok
}

// SetDisplayName sets the user label.
func (a *Account) SetDisplayName(name string) *Account {
	a.displayName = &name
	return a.touch()
}

// AddNotification appends a notification to the back of the queue.
func (a *Account) AddNotification(notification string) *Account {
	a.notifications = append(a.notifications, notification)
	return a.touch()
}

// SetNextNotifyAt sets the reserved notification deadline.
func (a *Account) SetNextNotifyAt(ts Timestamp) *Account {
	a.nextNotifyAt = &ts
	return a.touch()
}

// AddUserData stores data under dataID, replacing any previous value.
func (a *Account) AddUserData(dataID string, data []byte) *Account {
	a.userData[dataID] = slices.Clone(data)
	return a.touch()
}

// AddTransaction records tx under signature, replacing any previous payload.
func (a *Account) AddTransaction(signature string, tx Transaction) *Account {
	a.transactions[signature] = tx
	return a.touch()
}

// touch refreshes updatedAt. It never moves the label backwards.
func (a *Account) touch() *Account {
	if now := Now(); string(now[:]) > string(a.updatedAt[:]) {
		a.updatedAt = now
	}
	return a
}
