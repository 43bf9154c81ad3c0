package wirebuf

import "io"

// BytesSource is an unbuffered Source over a fixed in-memory slice with a
// monotonic read cursor. It never blocks; reading past the end fails with
// io.EOF.
type BytesSource struct {
	b   []byte
	pos int
}

var _ Source = (*BytesSource)(nil)

// NewBytesSource creates a source over b. The slice is not copied.
func NewBytesSource(b []byte) *BytesSource {
	return &BytesSource{b: b}
}

// ReadSome copies up to len(p) remaining bytes into p.
func (s *BytesSource) ReadSome(p []byte) (int, error) {
	if s.pos >= len(s.b) {
		return 0, io.EOF
	}
	n := copy(p, s.b[s.pos:])
	s.pos += n
	return n, nil
}

// Healthy always reports true; an in-memory read past the end is stream
// exhaustion, not an instance failure.
func (s *BytesSource) Healthy() bool { return true }

// Available returns the number of unread bytes.
func (s *BytesSource) Available() int {
	if n := len(s.b) - s.pos; n > 0 {
		return n
	}
	return 0
}

// Reset rewinds the cursor so the slice can be read again.
func (s *BytesSource) Reset() { s.pos = 0 }
