package wire

import (
	"os"
	"strconv"
)

// DefaultMaxDepth bounds message nesting during decode.
const DefaultMaxDepth = 100

// UnmarshalOptions controls optional decode behaviors. The zero value decodes
// leniently: mismatched wire types on known fields are kept as unknown.
type UnmarshalOptions struct {
	// StrictWireType: when true, a known field that arrives with a wire type
	// its kind cannot be read from fails with ErrUnexpectedWireType. When
	// false, the occurrence is captured as an unknown field.
	StrictWireType bool

	// DiscardUnknown: when true, unknown fields are skipped instead of kept.
	DiscardUnknown bool

	// ValidateUTF8: when true, string fields must hold valid UTF-8.
	ValidateUTF8 bool

	// MaxDepth limits message and group nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	// MaxSize rejects inputs longer than this many bytes. Zero means no limit
	// beyond MaxSize.
	MaxSize int
}

// defaultOptions are used by Unmarshal and Decode.
var defaultOptions = UnmarshalOptions{}

// DefaultOptions returns the options used by Unmarshal and Decode.
func DefaultOptions() UnmarshalOptions { return defaultOptions }

func (o UnmarshalOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func init() {
	// Optional env toggles for test harnesses; defaults remain unchanged if unset.
	if envBool("PROTOCORE_STRICT_WIRE") {
		defaultOptions.StrictWireType = true
	}
	if envBool("PROTOCORE_DISCARD_UNKNOWN") {
		defaultOptions.DiscardUnknown = true
	}
	if envBool("PROTOCORE_VALIDATE_UTF8") {
		defaultOptions.ValidateUTF8 = true
	}
	if v, err := strconv.Atoi(os.Getenv("PROTOCORE_MAX_DEPTH")); err == nil && v > 0 {
		defaultOptions.MaxDepth = v
	}
}

func envBool(key string) bool {
	v := os.Getenv(key)
	return v == "1" || v == "true"
}
