package wirebuf

// BytesSink is an unbuffered Sink that appends to a growable in-memory
// slice. It is used for composing protocol messages without I/O and in
// tests. It shares the large-transfer notification rule with FdSink.
type BytesSink struct {
	b    []byte
	mon  *TransferMonitor
	warn bool
}

var _ Sink = (*BytesSink)(nil)

// NewBytesSink creates an empty in-memory sink. Unlike FdSink, the
// large-transfer warning is enabled by default.
func NewBytesSink() *BytesSink {
	return &BytesSink{mon: DefaultMonitor, warn: true}
}

// WithMonitor attaches a transfer monitor other than DefaultMonitor and
// returns the sink for chaining.
func (s *BytesSink) WithMonitor(m *TransferMonitor) *BytesSink {
	s.mon = m
	return s
}

// WithLargeTransferWarning enables or disables this instance's
// participation in the monitor's large-transfer notification.
func (s *BytesSink) WithLargeTransferWarning(enabled bool) *BytesSink {
	s.warn = enabled
	return s
}

// Write appends p. In-memory writes cannot fail.
func (s *BytesSink) Write(p []byte) error {
	s.b = append(s.b, p...)
	if s.warn {
		s.mon.Account(len(p))
	}
	return nil
}

// Healthy always reports true; appending to memory has no failure mode.
func (s *BytesSink) Healthy() bool { return true }

// Bytes returns a view of everything written so far.
func (s *BytesSink) Bytes() []byte { return s.b }

// Len returns the number of bytes written.
func (s *BytesSink) Len() int { return len(s.b) }

// Reset discards the accumulated bytes, keeping the allocation.
func (s *BytesSink) Reset() { s.b = s.b[:0] }
