package wirebuf

import (
	"encoding/binary"
	"math"
	"slices"
)

// Wire format: every field occupies a multiple of 8 bytes. Integers are 8
// little-endian bytes regardless of logical width; byte strings are an
// 8-byte length, the payload, and zero padding up to the next multiple of
// 8; collections are an 8-byte count followed by that many strings. All
// functions here are stateless and operate purely through Sink and Source.

// WriteUint64 writes v as 8 little-endian bytes.
func WriteUint64(sink Sink, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return sink.Write(buf[:])
}

// WriteUint32 writes v zero-extended to 8 little-endian bytes.
func WriteUint32(sink Sink, v uint32) error {
	return WriteUint64(sink, uint64(v))
}

// ReadUint64 reads 8 little-endian bytes, accepting the full 64-bit range.
func ReadUint64(src Source) (uint64, error) {
	var buf [8]byte
	if err := ReadExact(src, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadUint32 reads 8 little-endian bytes and requires the upper four to be
// zero; otherwise it fails with ErrIntTooLarge.
func ReadUint32(src Source) (uint32, error) {
	v, err := ReadUint64(src)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, ErrIntTooLarge
	}
	return uint32(v), nil
}

// WritePadding writes the zero bytes that round a payload of the given
// length up to the next multiple of 8.
func WritePadding(sink Sink, length int) error {
	if pad := Roundup(length, 8) - length; pad > 0 {
		return sink.Write(zeros[:pad])
	}
	return nil
}

// ReadPadding consumes the padding that follows a payload of the given
// length and fails with ErrNonZeroPadding unless every byte is zero.
func ReadPadding(src Source, length int) error {
	pad := Roundup(length, 8) - length
	if pad == 0 {
		return nil
	}
	var buf [8]byte
	if err := ReadExact(src, buf[:pad]); err != nil {
		return err
	}
	for _, b := range buf[:pad] {
		if b != 0 {
			return ErrNonZeroPadding
		}
	}
	return nil
}

// WriteBytes writes p as a length-prefixed, padded byte string.
func WriteBytes(sink Sink, p []byte) error {
	if err := WriteUint64(sink, uint64(len(p))); err != nil {
		return err
	}
	if len(p) > 0 {
		if err := sink.Write(p); err != nil {
			return err
		}
	}
	return WritePadding(sink, len(p))
}

// WriteString writes s as a length-prefixed, padded byte string.
func WriteString(sink Sink, s string) error {
	return WriteBytes(sink, []byte(s))
}

// ReadString reads a byte string, allocating a buffer of exactly the
// encoded length.
func ReadString(src Source) (string, error) {
	length, err := ReadUint32(src)
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if err := ReadExact(src, buf); err != nil {
		return "", err
	}
	if err := ReadPadding(src, int(length)); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadStringInto reads a byte string into buf and returns the payload
// length. If the encoded length exceeds len(buf) it fails with
// ErrStringTooLong before consuming any payload byte, leaving the source
// positioned just past the length field.
func ReadStringInto(src Source, buf []byte) (int, error) {
	length, err := ReadUint32(src)
	if err != nil {
		return 0, err
	}
	if int(length) > len(buf) {
		return 0, ErrStringTooLong
	}
	if err := ReadExact(src, buf[:length]); err != nil {
		return 0, err
	}
	if err := ReadPadding(src, int(length)); err != nil {
		return 0, err
	}
	return int(length), nil
}

// WriteStrings writes ss as a count-prefixed sequence of byte strings, in
// slice order.
func WriteStrings(sink Sink, ss []string) error {
	if err := WriteUint64(sink, uint64(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := WriteString(sink, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteStringSet writes set as a count-prefixed sequence of byte strings in
// sorted order, so equal sets encode to equal bytes.
func WriteStringSet(sink Sink, set map[string]struct{}) error {
	ss := make([]string, 0, len(set))
	for s := range set {
		ss = append(ss, s)
	}
	slices.Sort(ss)
	return WriteStrings(sink, ss)
}

// readStrings decodes a count-prefixed string sequence, handing each
// element to add in stream order. The target container's own semantics
// decide whether duplicates collapse; exactly count strings are consumed
// either way. Both collection decoders are instances of this loop.
func readStrings(src Source, add func(string)) error {
	count, err := ReadUint32(src)
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		s, err := ReadString(src)
		if err != nil {
			return err
		}
		add(s)
	}
	return nil
}

// ReadStrings decodes a string sequence into a slice, preserving order and
// duplicates.
func ReadStrings(src Source) ([]string, error) {
	ss := []string{}
	if err := readStrings(src, func(s string) { ss = append(ss, s) }); err != nil {
		return nil, err
	}
	return ss, nil
}

// ReadStringSet decodes a string sequence into a set, collapsing
// duplicates.
func ReadStringSet(src Source) (map[string]struct{}, error) {
	set := map[string]struct{}{}
	err := readStrings(src, func(s string) { set[s] = struct{}{} })
	if err != nil {
		return nil, err
	}
	return set, nil
}
