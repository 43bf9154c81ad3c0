package wirebuf

// DefaultBufferSize is the capacity of a buffered sink or source when none
// is given.
const DefaultBufferSize = 32 * 1024

// BufferedSink batches small writes into a fixed-capacity buffer before
// handing them to the terminal sink, so codec callers don't pay one
// downstream write per field. The buffer is allocated lazily on first use.
//
// A BufferedSink must be flushed (or closed) before it is dropped, or
// buffered bytes are lost.
type BufferedSink struct {
	out  Sink
	buf  []byte
	pos  int
	size int
}

var (
	_ Sink    = (*BufferedSink)(nil)
	_ Flusher = (*BufferedSink)(nil)
)

// NewBufferedSink wraps out with a buffer of the given capacity.
// A non-positive size selects DefaultBufferSize.
func NewBufferedSink(out Sink, size int) *BufferedSink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferedSink{out: out, size: size}
}

// Write accepts all of p. A write that would fill the buffer bypasses it:
// the buffer is flushed and the remainder goes straight downstream, avoiding
// a double copy of large payloads.
func (b *BufferedSink) Write(p []byte) error {
	if b.buf == nil {
		b.buf = make([]byte, b.size)
	}
	for len(p) > 0 {
		if b.pos+len(p) >= b.size {
			if err := b.Flush(); err != nil {
				return err
			}
			return b.out.Write(p)
		}
		n := copy(b.buf[b.pos:], p)
		b.pos += n
		p = p[n:]
		if b.pos == b.size {
			if err := b.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes any buffered bytes downstream. Occupancy is zeroed before
// the downstream write so a reentrant Flush during error unwinding sees an
// empty buffer rather than flushing the same bytes twice. Do not reorder.
func (b *BufferedSink) Flush() error {
	if b.pos == 0 {
		return nil
	}
	n := b.pos
	b.pos = 0
	return b.out.Write(b.buf[:n])
}

// Close flushes the buffer on teardown. A flush failure here is swallowed:
// no caller remains to observe it, and the terminal sink's health flag
// already records it.
func (b *BufferedSink) Close() {
	_ = b.Flush()
}

// Healthy reports the terminal sink's health.
func (b *BufferedSink) Healthy() bool { return b.out.Healthy() }

// Buffered returns the number of bytes held but not yet flushed.
func (b *BufferedSink) Buffered() int { return b.pos }

// Size returns the buffer capacity.
func (b *BufferedSink) Size() int { return b.size }
