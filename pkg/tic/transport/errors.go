package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrChecksumMismatch indicates the CRC byte of a serial response
	// doesn't match its data.
	ErrChecksumMismatch = errors.New("response CRC check failed")
	// ErrMissingFraming is matched by MissingFramingError with errors.Is.
	ErrMissingFraming = errors.New("response does not contain CRC byte")
)

// ShortReadError indicates a response of unexpected size.
type ShortReadError struct {
	Expected int
	Actual   int
}

// Error implements error.
func (e *ShortReadError) Error() string {
	return fmt.Sprintf("expected to read %d bytes, got %d", e.Expected, e.Actual)
}

// MissingFramingError indicates a serial response too short to carry its
// CRC byte.
type MissingFramingError struct {
	Expected int
	Actual   int
}

// Error implements error.
func (e *MissingFramingError) Error() string {
	return fmt.Sprintf("%v: expected %d bytes, got %d", ErrMissingFraming, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrMissingFraming) true.
func (e *MissingFramingError) Is(target error) bool {
	return target == ErrMissingFraming
}

// MaxBlockLength is the largest block a single read may request.
const MaxBlockLength = 15

// BlockLengthError indicates a block read length outside 1..MaxBlockLength.
type BlockLengthError struct {
	Length int
}

// Error implements error.
func (e *BlockLengthError) Error() string {
	return fmt.Sprintf("block length %d not in 1..%d", e.Length, MaxBlockLength)
}

func checkBlockLength(length int) error {
	if length < 1 || length > MaxBlockLength {
		return &BlockLengthError{Length: length}
	}
	return nil
}
