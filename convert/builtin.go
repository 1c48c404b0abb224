package convert

import (
	"fmt"
	"math"
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/wire"
)

// Built-in converters.
var (
	UUID     Converter[buffer.Slice, uuid.UUID]  = uuidConverter{}
	Addr     Converter[buffer.Slice, netip.Addr] = addrConverter{}
	Duration Converter[int64, time.Duration]     = durationConverter{}
	Time     Converter[int64, time.Time]         = timeConverter{}
)

// uuidConverter maps a 16-byte bytes field to a uuid.UUID.
type uuidConverter struct{}

func (uuidConverter) Name() string { return "uuid" }

func (uuidConverter) Wrap(b buffer.Slice) (uuid.UUID, error) {
	if b.Len() != 16 {
		return uuid.Nil, &ConversionError{Converter: "uuid", Expected: "16 bytes", Got: byteCount(b.Len())}
	}
	return uuid.FromBytes(b.Bytes())
}

func (uuidConverter) Unwrap(u uuid.UUID) (buffer.Slice, error) {
	return buffer.SliceOf(u[:]), nil
}

func (uuidConverter) WireSize(uuid.UUID) int { return wire.SizeBytes(16) }

// addrConverter maps a 4- or 16-byte bytes field to a netip.Addr.
type addrConverter struct{}

func (addrConverter) Name() string { return "ip" }

func (addrConverter) Wrap(b buffer.Slice) (netip.Addr, error) {
	switch b.Len() {
	case 4:
		return netip.AddrFrom4([4]byte(b.Bytes())), nil
	case 16:
		return netip.AddrFrom16([16]byte(b.Bytes())), nil
	}
	return netip.Addr{}, &ConversionError{Converter: "ip", Expected: "4 or 16 bytes", Got: byteCount(b.Len())}
}

func (addrConverter) Unwrap(a netip.Addr) (buffer.Slice, error) {
	if !a.IsValid() {
		return buffer.Slice{}, &ConversionError{Converter: "ip", Expected: "a valid address", Got: "the zero Addr"}
	}
	return buffer.SliceOf(a.AsSlice()), nil
}

func (addrConverter) WireSize(a netip.Addr) int {
	if a.Is4() {
		return wire.SizeBytes(4)
	}
	return wire.SizeBytes(16)
}

// durationConverter maps an int64 nanosecond count to a time.Duration.
type durationConverter struct{}

func (durationConverter) Name() string { return "duration" }

func (durationConverter) Wrap(n int64) (time.Duration, error) { return time.Duration(n), nil }

func (durationConverter) Unwrap(d time.Duration) (int64, error) { return int64(d), nil }

func (durationConverter) WireSize(d time.Duration) int { return wire.SizeVarint(uint64(d)) }

// timeConverter maps an int64 count of nanoseconds since the Unix epoch to a
// UTC time.Time. Only instants UnixNano can represent convert; the zero
// time.Time is not one of them.
type timeConverter struct{}

var (
	minTime = time.Unix(0, math.MinInt64).UTC()
	maxTime = time.Unix(0, math.MaxInt64).UTC()
)

func (timeConverter) Name() string { return "time" }

func (timeConverter) Wrap(n int64) (time.Time, error) { return time.Unix(0, n).UTC(), nil }

func (timeConverter) Unwrap(t time.Time) (int64, error) {
	if t.IsZero() {
		return 0, &ConversionError{Converter: "time", Expected: "a set time", Got: "the zero Time"}
	}
	if t.Before(minTime) || t.After(maxTime) {
		return 0, &ConversionError{Converter: "time", Expected: fmt.Sprintf("a time between %s and %s", minTime.Format(time.RFC3339Nano), maxTime.Format(time.RFC3339Nano)), Got: t.UTC().Format(time.RFC3339Nano)}
	}
	return t.UnixNano(), nil
}

// FixedBytes maps a bytes field to a []byte of exactly n bytes. Both
// directions reject other lengths.
func FixedBytes(n int) Converter[buffer.Slice, []byte] {
	return fixedBytesConverter{n: n}
}

type fixedBytesConverter struct{ n int }

func (c fixedBytesConverter) Name() string { return fmt.Sprintf("fixed%d", c.n) }

func (c fixedBytesConverter) Wrap(b buffer.Slice) ([]byte, error) {
	if b.Len() != c.n {
		return nil, &ConversionError{Converter: c.Name(), Expected: byteCount(c.n), Got: byteCount(b.Len())}
	}
	return b.Bytes(), nil
}

func (c fixedBytesConverter) Unwrap(b []byte) (buffer.Slice, error) {
	if len(b) != c.n {
		return buffer.Slice{}, &ConversionError{Converter: c.Name(), Expected: byteCount(c.n), Got: byteCount(len(b))}
	}
	return buffer.SliceOf(b), nil
}

func byteCount(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}
