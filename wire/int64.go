package wire

// Some hosts hand 64-bit integers around as two 32-bit halves. These helpers
// are the only place the codec splits or joins words; every conversion is
// exact over the full 64-bit range.

// JoinInt64 combines a high and low word into a signed 64-bit value.
func JoinInt64(high, low uint32) int64 {
	return int64(JoinUint64(high, low))
}

// SplitInt64 splits v into its high and low words. The high word carries the
// sign bit.
func SplitInt64(v int64) (high, low uint32) {
	return SplitUint64(uint64(v))
}

// JoinUint64 combines a high and low word into an unsigned 64-bit value.
func JoinUint64(high, low uint32) uint64 {
	return uint64(high)<<32 | uint64(low)
}

// SplitUint64 splits v into its high and low words.
func SplitUint64(v uint64) (high, low uint32) {
	return uint32(v >> 32), uint32(v)
}
