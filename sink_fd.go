package wirebuf

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// FdSink is a terminal Sink over a raw OS file descriptor. Writes block
// until every byte is transmitted; EINTR is retried transparently. It does
// not own the descriptor.
type FdSink struct {
	fd      int
	mon     *TransferMonitor
	warn    bool
	written int64
	healthy bool
}

var _ Sink = (*FdSink)(nil)

// NewFdSink creates a sink over fd. Large-transfer warnings are disabled
// until enabled with WithLargeTransferWarning.
func NewFdSink(fd int) *FdSink {
	return &FdSink{fd: fd, mon: DefaultMonitor, healthy: true}
}

// NewBufferedFdSink creates a sink over fd behind a buffer of the given
// capacity (non-positive selects DefaultBufferSize).
func NewBufferedFdSink(fd int, size int) *BufferedSink {
	return NewBufferedSink(NewFdSink(fd), size)
}

// WithMonitor attaches a transfer monitor other than DefaultMonitor and
// returns the sink for chaining.
func (s *FdSink) WithMonitor(m *TransferMonitor) *FdSink {
	s.mon = m
	return s
}

// WithLargeTransferWarning enables or disables this instance's
// participation in the monitor's large-transfer notification.
func (s *FdSink) WithLargeTransferWarning(enabled bool) *FdSink {
	s.warn = enabled
	return s
}

// Write transmits all of p, looping until the descriptor has accepted every
// byte. On failure the health flag goes false and the syscall error is
// returned with context.
func (s *FdSink) Write(p []byte) error {
	s.written += int64(len(p))
	if s.warn {
		s.mon.Account(len(p))
	}
	for len(p) > 0 {
		n, err := unix.Write(s.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			s.healthy = false
			return errors.Wrap(err, "writing to descriptor")
		}
		p = p[n:]
	}
	return nil
}

// Healthy reports whether every write so far succeeded.
func (s *FdSink) Healthy() bool { return s.healthy }

// Count returns the cumulative bytes handed to this sink.
func (s *FdSink) Count() int64 { return s.written }
