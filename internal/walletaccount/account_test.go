package walletaccount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty record for the key", func(t *testing.T) {
		a := New("31oVduNkaRxEP7PMzL8dgFTR8B3hHQcffcLfWnP131gq")

		assert.Equal(t, "31oVduNkaRxEP7PMzL8dgFTR8B3hHQcffcLfWnP131gq", a.AccountKey())
		assert.Equal(t, a.CreatedAt(), a.UpdatedAt())
		assert.False(t, a.CreatedAt().IsZero())
		assert.Empty(t, a.Notifications())
		assert.Empty(t, a.UserData())
		assert.Empty(t, a.Transactions())

		_, ok := a.NextNotifyAt()
		assert.False(t, ok)
	})
}

func TestAccount_Mutators(t *testing.T) {
	t.Run("notifications are queued at the back", func(t *testing.T) {
		a := New("key")
		a.AddNotification("one").AddNotification("two")

		assert.Equal(t, []string{"one", "two"}, a.Notifications())
	})

	t.Run("display name is optional", func(t *testing.T) {
		a := New("key")
		a.SetDisplayName("cold storage")

		name, ok := a.DisplayName()
		require.True(t, ok)
		assert.Equal(t, "cold storage", name)
	})

	t.Run("user data keys are unique", func(t *testing.T) {
		a := New("key")
		a.AddUserData("id", []byte("v1"))
		a.AddUserData("id", []byte("v2"))

		assert.Equal(t, map[string][]byte{"id": []byte("v2")}, a.UserData())
	})

	t.Run("transactions are keyed by signature", func(t *testing.T) {
		a := New("key")
		a.AddTransaction("sig", Transaction{Signature: "sig", Slot: 1})

		assert.True(t, a.HasTransaction("sig"))
		assert.False(t, a.HasTransaction("other"))
		assert.Len(t, a.Transactions(), 1)
	})

	t.Run("getters return copies", func(t *testing.T) {
		a := New("key")
		a.AddTransaction("sig", Transaction{Signature: "sig"})
		a.AddNotification("n")

		txs := a.Transactions()
		delete(txs, "sig")
		notes := a.Notifications()
		notes[0] = "changed"

		assert.True(t, a.HasTransaction("sig"))
		assert.Equal(t, []string{"n"}, a.Notifications())
	})

	t.Run("mutations refresh updated time without touching creation time", func(t *testing.T) {
		a := New("key")
		created := a.CreatedAt()
		a.updatedAt = TimestampFromTime(created.Time().Add(-time.Hour))

		a.AddTransaction("sig", Transaction{Signature: "sig"})

		assert.Equal(t, created, a.CreatedAt())
		assert.False(t, a.UpdatedAt().Time().Before(created.Time()))
	})
}

func TestTimestamp(t *testing.T) {
	t.Run("converts to and from time", func(t *testing.T) {
		now := time.Date(2024, 5, 17, 10, 30, 0, 123456789, time.UTC)

		ts := TimestampFromTime(now)
		assert.Equal(t, now, ts.Time())
	})

	t.Run("unix epoch is labelled 2^62", func(t *testing.T) {
		ts := TimestampFromTime(time.Unix(0, 0))
		assert.Equal(t, Timestamp{0x40, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ts)
	})

	t.Run("labels order like the times they encode", func(t *testing.T) {
		earlier := TimestampFromTime(time.Unix(100, 999))
		later := TimestampFromTime(time.Unix(101, 0))

		assert.Less(t, string(earlier[:]), string(later[:]))
	})
}
