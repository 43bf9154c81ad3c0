package wirebuf

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeString(t *testing.T, s string) *BytesSink {
	t.Helper()
	sink := NewBytesSink()
	require.NoError(t, WriteString(sink, s))
	return sink
}

func TestStringRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 1000000} {
		s := strings.Repeat("x", n)
		sink := encodeString(t, s)

		got, err := ReadString(NewBytesSource(sink.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, s, got, "length %d", n)
	}
}

func TestStringAlignment(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 1000000} {
		sink := encodeString(t, strings.Repeat("x", n))

		encoded := sink.Len()
		assert.Zero(t, encoded%8, "length %d", n)
		assert.Equal(t, 8+Roundup(n, 8), encoded, "length %d", n)

		pad := encoded - 8 - n
		assert.GreaterOrEqual(t, pad, 0)
		assert.Less(t, pad, 8)
	}
}

func TestReadStringIntoBounded(t *testing.T) {
	sink := encodeString(t, "hello world") // 11 bytes, padded to 16

	t.Run("FitsInBuffer", func(t *testing.T) {
		src := NewBytesSource(sink.Bytes())
		buf := make([]byte, 32)
		n, err := ReadStringInto(src, buf)
		require.NoError(t, err)
		assert.Equal(t, "hello world", string(buf[:n]))
		assert.Zero(t, src.Available())
	})

	t.Run("ExceedsBuffer", func(t *testing.T) {
		src := NewBytesSource(sink.Bytes())
		n, err := ReadStringInto(src, make([]byte, 5))
		require.ErrorIs(t, err, ErrStringTooLong)
		assert.Zero(t, n)
		// Only the length field may have been consumed.
		assert.Equal(t, 16, src.Available())
	})
}

func TestReadUint32Width(t *testing.T) {
	t.Run("InRange", func(t *testing.T) {
		v, err := ReadUint32(NewBytesSource([]byte{0x01, 0, 0, 0, 0, 0, 0, 0}))
		require.NoError(t, err)
		assert.EqualValues(t, 1, v)
	})

	t.Run("HighBytesSet", func(t *testing.T) {
		_, err := ReadUint32(NewBytesSource([]byte{0, 0, 0, 0, 0x01, 0, 0, 0}))
		require.ErrorIs(t, err, ErrIntTooLarge)
		assert.ErrorIs(t, err, ErrSerialisation)
	})

	t.Run("FullRangeVia64", func(t *testing.T) {
		v, err := ReadUint64(NewBytesSource([]byte{0, 0, 0, 0, 0x01, 0, 0, 0}))
		require.NoError(t, err)
		assert.EqualValues(t, uint64(1)<<32, v)
	})
}

func TestUintRoundTrip(t *testing.T) {
	sink := NewBytesSink()
	require.NoError(t, WriteUint32(sink, 0xDEADBEEF))
	require.NoError(t, WriteUint64(sink, 0x0102030405060708))
	assert.Equal(t, 16, sink.Len())

	src := NewBytesSource(sink.Bytes())
	v32, err := ReadUint32(src)
	require.NoError(t, err)
	v64, err := ReadUint64(src)
	require.NoError(t, err)
	assert.EqualValues(t, 0xDEADBEEF, v32)
	assert.EqualValues(t, 0x0102030405060708, v64)
}

func TestPaddingValidation(t *testing.T) {
	sink := encodeString(t, "abc")
	raw := sink.Bytes()
	raw[8+3] = 0xFF // first padding byte

	_, err := ReadString(NewBytesSource(raw))
	require.ErrorIs(t, err, ErrNonZeroPadding)
	assert.ErrorIs(t, err, ErrSerialisation)
}

func TestCollectionRoundTrip(t *testing.T) {
	in := []string{"a", "bb", "ccc"}
	sink := NewBytesSink()
	require.NoError(t, WriteStrings(sink, in))

	t.Run("OrderedTarget", func(t *testing.T) {
		out, err := ReadStrings(NewBytesSource(sink.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("SetTarget", func(t *testing.T) {
		out, err := ReadStringSet(NewBytesSource(sink.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, map[string]struct{}{"a": {}, "bb": {}, "ccc": {}}, out)
	})
}

func TestSetDecodeConsumesAllElements(t *testing.T) {
	sink := NewBytesSink()
	require.NoError(t, WriteStrings(sink, []string{"x", "x", "y"}))
	require.NoError(t, WriteUint64(sink, 0xFEED))

	src := NewBytesSource(sink.Bytes())
	set, err := ReadStringSet(src)
	require.NoError(t, err)
	assert.Len(t, set, 2)

	// Duplicates collapsed, yet all three encoded strings were consumed:
	// the trailing marker decodes cleanly.
	marker, err := ReadUint64(src)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFEED, marker)
	assert.Zero(t, src.Available())
}

func TestStringSetEncodesSorted(t *testing.T) {
	set := NewBytesSink()
	require.NoError(t, WriteStringSet(set, map[string]struct{}{"b": {}, "a": {}}))

	seq := NewBytesSink()
	require.NoError(t, WriteStrings(seq, []string{"a", "b"}))

	assert.Equal(t, seq.Bytes(), set.Bytes())
}

func TestReadStringTruncated(t *testing.T) {
	sink := encodeString(t, "hello world")

	t.Run("MidPayload", func(t *testing.T) {
		_, err := ReadString(NewBytesSource(sink.Bytes()[:12]))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("EmptySource", func(t *testing.T) {
		_, err := ReadString(NewBytesSource(nil))
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestCodecThroughBufferedLayers(t *testing.T) {
	terminal := NewBytesSink()
	sink := NewBufferedSink(terminal, 64)

	want := []string{"short", strings.Repeat("long", 200), ""}
	require.NoError(t, WriteStrings(sink, want))
	require.NoError(t, WriteUint32(sink, 42))
	require.NoError(t, sink.Flush())

	src := NewBufferedSource(NewBytesSource(terminal.Bytes()), 64)
	got, err := ReadStrings(src)
	require.NoError(t, err)
	v, err := ReadUint32(src)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.EqualValues(t, 42, v)
}
