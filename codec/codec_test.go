package codec_test

import (
	"bytes"
	"testing"

	"github.com/strictenc/sten/codec"
)

func TestWriter_LittleEndian(t *testing.T) {
	w := codec.NewWriter()
	w.U8(0xAB)
	w.U16(0x0102)
	w.U32(0x01020304)
	w.U64(0x0102030405060708)
	want := []byte{
		0xAB,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}
}

func TestWriter_LenPrefixed(t *testing.T) {
	w := codec.NewWriter()
	if err := w.LenPrefixed([]byte("hey")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []byte{0x03, 0x00, 'h', 'e', 'y'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}
}

func TestWriter_LenPrefixedOversize(t *testing.T) {
	w := codec.NewWriter()
	big := make([]byte, codec.MaxCollectionLen+1)
	if err := w.LenPrefixed(big); err != codec.ErrOversize {
		t.Fatalf("want ErrOversize, got %v", err)
	}
}

func TestReader_RoundTrip(t *testing.T) {
	w := codec.NewWriter()
	w.U8(0x7F)
	w.U16(0xBEEF)
	w.Raw([]byte{1, 2, 3})

	r := codec.NewReader(bytes.NewReader(w.Bytes()))
	b, err := r.U8()
	if err != nil || b != 0x7F {
		t.Fatalf("u8: %v %x", err, b)
	}
	v, err := r.U16()
	if err != nil || v != 0xBEEF {
		t.Fatalf("u16: %v %x", err, v)
	}
	if err := r.Skip(3); err != nil {
		t.Fatalf("skip: %v", err)
	}
	pos, err := r.Pos()
	if err != nil || pos != int64(w.Len()) {
		t.Fatalf("pos: %v %d", err, pos)
	}
}

func TestReader_SkipDetectsTruncation(t *testing.T) {
	r := codec.NewReader(bytes.NewReader([]byte{1, 2}))
	if err := r.Skip(5); err == nil {
		t.Fatalf("skip past end must fail")
	}
}

func TestReader_Between(t *testing.T) {
	r := codec.NewReader(bytes.NewReader([]byte{10, 20, 30, 40}))
	if err := r.Skip(3); err != nil {
		t.Fatalf("skip: %v", err)
	}
	b, err := r.Between(1, 3)
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if !bytes.Equal(b, []byte{20, 30}) {
		t.Fatalf("got %v", b)
	}
	// Position is restored to the range end.
	pos, err := r.Pos()
	if err != nil || pos != 3 {
		t.Fatalf("pos after between: %v %d", err, pos)
	}
}
