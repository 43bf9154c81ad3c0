// Package wirebuf provides buffered byte-stream sinks and sources together
// with a little-endian, 8-byte-aligned wire codec for structured values
// (integers, byte strings, string collections) exchanged over descriptors,
// pipes, or in-memory buffers.
package wirebuf

import "io"

// Sink is the write end of a byte stream. A Sink accepts exactly len(p)
// bytes per call, in order; it may buffer or block.
type Sink interface {
	// Write accepts all of p or fails. Partial acceptance is not reported.
	Write(p []byte) error

	// Healthy reports whether every prior operation on this instance
	// succeeded. Once false it is never reset.
	Healthy() bool
}

// Source is the read end of a byte stream. A Source produces between 1 and
// len(p) bytes per ReadSome call.
type Source interface {
	// ReadSome fills p with at least one byte and returns the count, or
	// fails. An exhausted stream fails with io.EOF.
	ReadSome(p []byte) (int, error)

	// Healthy reports whether every prior operation on this instance
	// succeeded. Once false it is never reset.
	Healthy() bool
}

// Flusher is implemented by sinks that batch writes.
type Flusher interface {
	Flush() error
}

// ReadExact fills all of p from src, looping over ReadSome until satisfied.
// Exhaustion before the first byte fails with io.EOF; exhaustion after a
// partial read fails with io.ErrUnexpectedEOF.
func ReadExact(src Source, p []byte) error {
	read := 0
	for read < len(p) {
		n, err := src.ReadSome(p[read:])
		if err != nil {
			if err == io.EOF && read > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		read += n
	}
	return nil
}
