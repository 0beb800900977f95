package timeconv

import "time"

// Supported range in unix seconds: 0000-01-01T00:00:00Z through
// 9999-12-31T23:59:59Z. Keeping the year at four digits means every Instant
// has a well-formed RFC3339 rendering.
const (
	MinUnixSeconds int64 = -62167219200
	MaxUnixSeconds int64 = 253402300799
)

const nanosPerSecond = int64(time.Second)

// Instant is an absolute point in time: whole seconds since the unix epoch
// plus a nanosecond remainder in [0, 1e9). It carries no time zone.
//
// The zero value is 1970-01-01T00:00:00Z.
type Instant struct {
	secs  int64
	nanos int32
}

// NewInstant builds an Instant from seconds and nanoseconds, normalizing
// nanos into [0, 1e9). The bool is false when the result is out of range.
func NewInstant(secs, nanos int64) (Instant, bool) {
	secs += nanos / nanosPerSecond
	nanos %= nanosPerSecond
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	if secs < MinUnixSeconds || secs > MaxUnixSeconds {
		return Instant{}, false
	}
	return Instant{secs: secs, nanos: int32(nanos)}, true
}

// InstantFromTime converts a time.Time. The bool is false when t is outside
// the supported range.
func InstantFromTime(t time.Time) (Instant, bool) {
	return NewInstant(t.Unix(), int64(t.Nanosecond()))
}

// Unix returns whole seconds since the epoch, rounded toward negative infinity.
func (i Instant) Unix() int64 {
	return i.secs
}

// UnixMilli returns whole milliseconds since the epoch, rounded toward
// negative infinity.
func (i Instant) UnixMilli() int64 {
	return i.secs*1000 + int64(i.nanos)/int64(time.Millisecond)
}

// Nanos returns the sub-second remainder in nanoseconds.
func (i Instant) Nanos() int32 {
	return i.nanos
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.secs, int64(i.nanos)).UTC()
}

// IsEpoch reports whether the instant is exactly 1970-01-01T00:00:00Z.
func (i Instant) IsEpoch() bool {
	return i.secs == 0 && i.nanos == 0
}
