package wirebuf

// BufferedSource serves reads out of a fixed-capacity buffer that is lazily
// refilled with a single ReadSome from the underlying source whenever it
// runs empty. Invariant: rpos <= wpos <= len(buf).
type BufferedSource struct {
	in   Source
	buf  []byte
	rpos int
	wpos int
	size int
}

var _ Source = (*BufferedSource)(nil)

// NewBufferedSource wraps in with a buffer of the given capacity.
// A non-positive size selects DefaultBufferSize.
func NewBufferedSource(in Source, size int) *BufferedSource {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferedSource{in: in, size: size}
}

// ReadSome returns 1..len(p) buffered bytes, refilling from the underlying
// source first if the buffer is empty.
func (b *BufferedSource) ReadSome(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.buf == nil {
		b.buf = make([]byte, b.size)
	}
	if b.rpos == b.wpos {
		b.rpos, b.wpos = 0, 0
		n, err := b.in.ReadSome(b.buf)
		if err != nil {
			return 0, err
		}
		b.wpos = n
	}
	n := copy(p, b.buf[b.rpos:b.wpos])
	b.rpos += n
	if b.rpos == b.wpos {
		b.rpos, b.wpos = 0, 0
	}
	return n, nil
}

// HasData reports whether unread buffered bytes remain, i.e. whether the
// next ReadSome is guaranteed not to touch the underlying source.
func (b *BufferedSource) HasData() bool { return b.rpos < b.wpos }

// Healthy reports the underlying source's health.
func (b *BufferedSource) Healthy() bool { return b.in.Healthy() }

// Size returns the buffer capacity.
func (b *BufferedSource) Size() int { return b.size }
