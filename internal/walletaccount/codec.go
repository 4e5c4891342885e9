package walletaccount

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
)

// byteOrder is the integer byte order of the record encoding.
var byteOrder = binary.LittleEndian

var (
	// ErrTruncated is returned when the input ends before the record does.
	ErrTruncated = errors.New("account record truncated")

	// ErrTrailingBytes is returned when bytes remain after a complete record.
	ErrTrailingBytes = errors.New("unexpected trailing bytes after account record")

	// ErrNonCanonical is returned when map keys are not strictly increasing.
	// Only canonical input is accepted so that encode(decode(b)) == b.
	ErrNonCanonical = errors.New("account record is not canonically encoded")

	// ErrInvalidTag is returned when an option tag is neither 0 nor 1.
	ErrInvalidTag = errors.New("invalid option tag")
)

// Encode serializes the record in field order. Map entries are written in
// ascending key order, so equal records always encode to equal bytes.
func Encode(a *Account) ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 256)}

	w.timestamp(a.createdAt)
	w.timestamp(a.updatedAt)
	w.optionalString(a.displayName)
	w.string(a.accountKey)
	w.strings(a.notifications)
	w.optionalTimestamp(a.nextNotifyAt)

	w.length(len(a.userData))
	for _, id := range sortedKeys(a.userData) {
		w.string(id)
		w.bytes(a.userData[id])
	}

	w.length(len(a.transactions))
	for _, sig := range sortedKeys(a.transactions) {
		w.string(sig)
		w.transaction(a.transactions[sig])
	}

	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

// Decode parses a record produced by Encode. The whole input must be consumed.
func Decode(data []byte) (*Account, error) {
	r := &reader{buf: data}
	a := &Account{}

	a.createdAt = r.timestamp()
	a.updatedAt = r.timestamp()
	a.displayName = r.optionalString()
	a.accountKey = r.string()
	a.notifications = r.strings()
	if a.notifications == nil {
		a.notifications = make([]string, 0)
	}
	a.nextNotifyAt = r.optionalTimestamp()

	n := r.length()
	a.userData = make(map[string][]byte, min(n, len(data)))
	var prev *string
	for i := 0; i < n && r.err == nil; i++ {
		id := r.string()
		r.checkOrder(prev, id)
		a.userData[id] = r.bytes()
		prev = &id
	}

	n = r.length()
	a.transactions = make(map[string]Transaction, min(n, len(data)))
	prev = nil
	for i := 0; i < n && r.err == nil; i++ {
		sig := r.string()
		r.checkOrder(prev, sig)
		a.transactions[sig] = r.transaction()
		prev = &sig
	}

	if r.err != nil {
		return nil, r.err
	}
	if len(r.buf) != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(r.buf))
	}
	return a, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type writer struct {
	buf []byte
	err error
}

func (w *writer) length(n int) {
	if n > math.MaxUint32 {
		w.err = fmt.Errorf("length %d exceeds u32", n)
		return
	}
	w.buf = byteOrder.AppendUint32(w.buf, uint32(n))
}

func (w *writer) tag(present bool) {
	if present {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

func (w *writer) u64(v uint64) { w.buf = byteOrder.AppendUint64(w.buf, v) }

func (w *writer) bytes(b []byte) {
	w.length(len(b))
	w.buf = append(w.buf, b...)
}

func (w *writer) string(s string) {
	w.length(len(s))
	w.buf = append(w.buf, s...)
}

func (w *writer) strings(ss []string) {
	w.length(len(ss))
	for _, s := range ss {
		w.string(s)
	}
}

func (w *writer) optionalString(s *string) {
	w.tag(s != nil)
	if s != nil {
		w.string(*s)
	}
}

func (w *writer) timestamp(ts Timestamp) { w.buf = append(w.buf, ts[:]...) }

func (w *writer) optionalTimestamp(ts *Timestamp) {
	w.tag(ts != nil)
	if ts != nil {
		w.timestamp(*ts)
	}
}

func (w *writer) transaction(tx Transaction) {
	w.string(tx.Signature)
	w.u64(tx.Slot)
	w.tag(tx.BlockTime != nil)
	if tx.BlockTime != nil {
		w.u64(uint64(*tx.BlockTime))
	}
	w.u64(tx.Fee)
	w.string(tx.Err)
	w.strings(tx.AccountKeys)
	w.strings(tx.LogMessages)
}

// reader consumes buf front to back. After the first error every read
// returns a zero value and err is kept.
type reader struct {
	buf []byte
	err error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > len(r.buf) {
		r.err = fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, len(r.buf))
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *reader) length() int {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int(byteOrder.Uint32(b))
}

func (r *reader) tag() bool {
	b := r.take(1)
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		r.err = fmt.Errorf("%w: %d", ErrInvalidTag, b[0])
		return false
	}
}

func (r *reader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return byteOrder.Uint64(b)
}

func (r *reader) bytes() []byte {
	return slices.Clone(r.take(r.length()))
}

func (r *reader) string() string {
	return string(r.take(r.length()))
}

func (r *reader) strings() []string {
	n := r.length()
	if n == 0 || r.err != nil {
		return nil
	}
	// Every string costs at least its 4 byte length prefix.
	if n > len(r.buf)/4 {
		r.err = fmt.Errorf("%w: %d strings declared, %d bytes left", ErrTruncated, n, len(r.buf))
		return nil
	}
	ss := make([]string, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		ss = append(ss, r.string())
	}
	return ss
}

func (r *reader) optionalString() *string {
	if !r.tag() {
		return nil
	}
	s := r.string()
	return &s
}

func (r *reader) timestamp() Timestamp {
	var ts Timestamp
	copy(ts[:], r.take(TimestampSize))
	return ts
}

func (r *reader) optionalTimestamp() *Timestamp {
	if !r.tag() {
		return nil
	}
	ts := r.timestamp()
	return &ts
}

func (r *reader) transaction() Transaction {
	var tx Transaction
	tx.Signature = r.string()
	tx.Slot = r.u64()
	if r.tag() {
		bt := int64(r.u64())
		tx.BlockTime = &bt
	}
	tx.Fee = r.u64()
	tx.Err = r.string()
	tx.AccountKeys = r.strings()
	tx.LogMessages = r.strings()
	return tx
}

func (r *reader) checkOrder(prev *string, key string) {
	if r.err == nil && prev != nil && key <= *prev {
		r.err = fmt.Errorf("%w: key %q after %q", ErrNonCanonical, key, *prev)
	}
}
