package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decode and encode failures. Callers match them with errors.Is; the codec
// wraps them with position or field context.
var (
	// ErrTruncatedInput: the input ended inside a varint, a fixed-width value
	// or a length-delimited payload.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedVarint: a varint ran past ten bytes or overflowed 64 bits.
	ErrMalformedVarint = errors.New("malformed varint")

	// ErrUnexpectedWireType: a known field arrived with a wire type its kind
	// cannot be decoded from.
	ErrUnexpectedWireType = errors.New("unexpected wire type")

	// ErrMalformedMessage: a message or packed run boundary was not consumed
	// exactly, or the input carried an invalid tag.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrMessageTooLarge: the input exceeds UnmarshalOptions.MaxSize.
	ErrMessageTooLarge = errors.New("message exceeds size limit")

	// ErrSizeMismatch: the writing pass disagreed with the sizing pass. It
	// points at a bug in a Message implementation, never at bad input.
	ErrSizeMismatch = errors.New("internal: size mismatch between sizing and writing")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["file", "message_type", "field", "type_name"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// wrapWithField prefixes the field path of err with fieldName.
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}

// WireTypeError reports a known field that arrived with the wrong wire type.
// It matches ErrUnexpectedWireType.
type WireTypeError struct {
	Number   FieldNumber
	Got      WireType
	Expected WireType
}

func (e *WireTypeError) Error() string {
	return fmt.Sprintf("field %d: %v: got %v, want %v", e.Number, ErrUnexpectedWireType, e.Got, e.Expected)
}

func (e *WireTypeError) Is(target error) bool {
	return target == ErrUnexpectedWireType
}

func truncated(what string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedInput, what, need, have)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedMessage, fmt.Sprintf(format, args...))
}
