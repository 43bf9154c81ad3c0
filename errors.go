package wirebuf

import (
	"errors"
	"fmt"
)

var (
	// ErrSerialisation is the root of all wire-format decode failures: the
	// bytes were readable but semantically invalid. Specific causes below
	// wrap it, so errors.Is(err, ErrSerialisation) matches the whole family.
	ErrSerialisation = errors.New("wirebuf: bad wire data")

	// ErrNonZeroPadding indicates an alignment padding byte that was not zero.
	ErrNonZeroPadding = fmt.Errorf("%w: non-zero padding", ErrSerialisation)

	// ErrIntTooLarge indicates a 32-bit decode of a value wider than 32 bits.
	ErrIntTooLarge = fmt.Errorf("%w: value exceeds 32-bit range", ErrSerialisation)

	// ErrStringTooLong indicates a bounded string decode whose encoded length
	// exceeds the caller-supplied buffer. No payload bytes are consumed.
	ErrStringTooLong = errors.New("wirebuf: string longer than destination buffer")

	// ErrCancelled indicates an externally requested abort observed at a
	// read boundary.
	ErrCancelled = errors.New("wirebuf: operation cancelled")
)
