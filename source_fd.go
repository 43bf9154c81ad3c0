package wirebuf

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// FdSource is a terminal Source over a raw OS file descriptor. A blocked
// read waits indefinitely; the only abort mechanism is the cancellation
// hook, checked before each read attempt. It does not own the descriptor.
type FdSource struct {
	fd        int
	mon       *TransferMonitor
	warn      bool
	cancelled func() bool
	read      int64
	healthy   bool
}

var _ Source = (*FdSource)(nil)

// NewFdSource creates a source over fd.
func NewFdSource(fd int) *FdSource {
	return &FdSource{fd: fd, mon: DefaultMonitor, healthy: true}
}

// NewBufferedFdSource creates a source over fd behind a buffer of the given
// capacity (non-positive selects DefaultBufferSize).
func NewBufferedFdSource(fd int, size int) *BufferedSource {
	return NewBufferedSource(NewFdSource(fd), size)
}

// WithMonitor attaches a transfer monitor other than DefaultMonitor and
// returns the source for chaining.
func (s *FdSource) WithMonitor(m *TransferMonitor) *FdSource {
	s.mon = m
	return s
}

// WithLargeTransferWarning enables or disables this instance's
// participation in the monitor's large-transfer notification.
func (s *FdSource) WithLargeTransferWarning(enabled bool) *FdSource {
	s.warn = enabled
	return s
}

// WithCancelCheck installs an externally raised cancellation flag. When the
// hook returns true, the next ReadSome fails with ErrCancelled before
// touching the descriptor.
func (s *FdSource) WithCancelCheck(cancelled func() bool) *FdSource {
	s.cancelled = cancelled
	return s
}

// ReadSome issues one read of up to len(p) bytes, retrying only on EINTR.
// Zero bytes read means the stream is exhausted: health goes false and the
// call fails with io.EOF. Any other failure also sets health false.
func (s *FdSource) ReadSome(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if s.cancelled != nil && s.cancelled() {
			return 0, ErrCancelled
		}
		n, err := unix.Read(s.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			s.healthy = false
			return 0, errors.Wrap(err, "reading from descriptor")
		}
		if n == 0 {
			s.healthy = false
			return 0, io.EOF
		}
		s.read += int64(n)
		if s.warn {
			s.mon.Account(n)
		}
		return n, nil
	}
}

// Healthy reports whether every read so far succeeded.
func (s *FdSource) Healthy() bool { return s.healthy }

// Count returns the cumulative bytes produced by this source.
func (s *FdSource) Count() int64 { return s.read }
