package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxBytes32StringLen is the longest string that fits in a bytes32 slot.
// One byte is reserved for the null terminator.
const MaxBytes32StringLen = 31

var (
	// ErrStringTooLong is returned when a string does not fit in bytes32
	ErrStringTooLong = errors.New("bytes32 string must be less than 32 bytes")
	// ErrNotNullTerminated is returned when a bytes32 value has no terminator
	ErrNotNullTerminated = errors.New("invalid bytes32 string - no null terminator")
)

// FormatBytes32String encodes a UTF-8 string into a zero-padded bytes32
func FormatBytes32String(s string) ([32]byte, error) {
	var out [32]byte
	if !utf8.ValidString(s) {
		return out, fmt.Errorf("invalid UTF-8 in %q", s)
	}
	if len(s) > MaxBytes32StringLen {
		return out, fmt.Errorf("%w: %q is %d bytes", ErrStringTooLong, s, len(s))
	}
	copy(out[:], s)
	return out, nil
}

// ParseBytes32String decodes a zero-padded bytes32 back into a string
func ParseBytes32String(b [32]byte) (string, error) {
	if b[31] != 0 {
		return "", ErrNotNullTerminated
	}
	n := bytes.IndexByte(b[:], 0)
	s := string(b[:n])
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("invalid UTF-8 in bytes32 %x", b)
	}
	return s, nil
}

// StringsToBytes32 encodes a list of proposal names for the Ballot constructor
func StringsToBytes32(names []string) ([][32]byte, error) {
	out := make([][32]byte, 0, len(names))
	for i, name := range names {
		b, err := FormatBytes32String(name)
		if err != nil {
			return nil, fmt.Errorf("proposal %d: %w", i+1, err)
		}
		out = append(out, b)
	}
	return out, nil
}
