package walletaccount

import (
	"encoding/binary"
	"time"
)

// tai64Offset is the TAI64 label of the Unix epoch (2^62).
const tai64Offset uint64 = 1 << 62

// TimestampSize is the encoded width of a Timestamp.
const TimestampSize = 12

// Timestamp is a TAI64N label: 8 bytes of big-endian seconds offset by 2^62
// followed by 4 bytes of big-endian nanoseconds.
type Timestamp [TimestampSize]byte

// Now returns the TAI64N label for the current wall clock time.
func Now() Timestamp {
	return TimestampFromTime(time.Now())
}

// TimestampFromTime converts t into its TAI64N label.
func TimestampFromTime(t time.Time) Timestamp {
	var ts Timestamp
	binary.BigEndian.PutUint64(ts[:8], tai64Offset+uint64(t.Unix()))
	binary.BigEndian.PutUint32(ts[8:], uint32(t.Nanosecond()))
	return ts
}

// Time converts the label back into a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	secs := int64(binary.BigEndian.Uint64(ts[:8]) - tai64Offset)
	nanos := int64(binary.BigEndian.Uint32(ts[8:]))
	return time.Unix(secs, nanos).UTC()
}

// IsZero reports whether the label was never set.
func (ts Timestamp) IsZero() bool {
	return ts == Timestamp{}
}
