// Package codec provides the wire-level primitives of strict encoding:
// little-endian fixed-width integers, u16 length prefixes, and the 0xFFFF
// collection cap. The schema core builds canonical forms and verifies encoded
// values through this package; full value encode/decode for arbitrary types
// is left to external value codecs.
package codec

import (
	"encoding/binary"
	"errors"
	"io"
)

// MaxCollectionLen is the hard cap on strict-encoded collection sizes.
// Every list, set, map and string carries a u16 length prefix, so no
// collection may exceed it.
const MaxCollectionLen = 0xFFFF

// ErrOversize reports an attempt to write a length prefix above MaxCollectionLen.
var ErrOversize = errors.New("codec: collection size exceeds 0xFFFF")

// Writer accumulates strict-encoded bytes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// U8 appends a single byte.
func (w *Writer) U8(v uint8) { w.buf = append(w.buf, v) }

// U16 appends a little-endian u16.
func (w *Writer) U16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// U32 appends a little-endian u32.
func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// U64 appends a little-endian u64.
func (w *Writer) U64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// Raw appends bytes verbatim.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// LenPrefixed appends a u16 length prefix followed by the bytes.
func (w *Writer) LenPrefixed(b []byte) error {
	if len(b) > MaxCollectionLen {
		return ErrOversize
	}
	w.U16(uint16(len(b)))
	w.Raw(b)
	return nil
}

// Reader reads strict-encoded primitives from a seekable stream. Seeking is
// required so that set/map elements can be re-read for canonical-order checks.
type Reader struct {
	r io.ReadSeeker
}

// NewReader wraps a seekable stream.
func NewReader(r io.ReadSeeker) *Reader { return &Reader{r: r} }

// Pos returns the current stream position.
func (r *Reader) Pos() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian u16.
func (r *Reader) U16() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// Skip advances the stream by n bytes, verifying they exist.
func (r *Reader) Skip(n int64) error {
	if n == 0 {
		return nil
	}
	// Seek past the end succeeds on most media, so read instead of seeking
	// to detect truncation.
	if _, err := io.CopyN(io.Discard, r.r, n); err != nil {
		return err
	}
	return nil
}

// Exact reads exactly n bytes.
func (r *Reader) Exact(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Between re-reads the byte range [from, to) and restores the position to to.
// Used for lexicographic ordering checks over already-consumed elements.
func (r *Reader) Between(from, to int64) ([]byte, error) {
	if _, err := r.r.Seek(from, io.SeekStart); err != nil {
		return nil, err
	}
	b := make([]byte, to-from)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	return b, nil
}
