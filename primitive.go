package sten

import "fmt"

// PrimitiveKind is the closed vocabulary of atomic types. Each kind has a
// fixed canonical tag byte; adding a kind is a breaking change to the format
// version.
type PrimitiveKind uint8

const (
	Bool PrimitiveKind = 0x01

	U8    PrimitiveKind = 0x10
	U16   PrimitiveKind = 0x11
	U32   PrimitiveKind = 0x12
	U64   PrimitiveKind = 0x13
	U128  PrimitiveKind = 0x14
	U256  PrimitiveKind = 0x15
	U512  PrimitiveKind = 0x16
	U1024 PrimitiveKind = 0x17

	I8    PrimitiveKind = 0x20
	I16   PrimitiveKind = 0x21
	I32   PrimitiveKind = 0x22
	I64   PrimitiveKind = 0x23
	I128  PrimitiveKind = 0x24
	I256  PrimitiveKind = 0x25
	I512  PrimitiveKind = 0x26
	I1024 PrimitiveKind = 0x27

	// Bytes is a fixed-size byte array; the array length is a type parameter.
	Bytes PrimitiveKind = 0x30
	// Str is a UTF-8 string with u16 min/max length bounds measured in bytes.
	Str PrimitiveKind = 0x31
	// Ascii is a string restricted to the 7-bit ASCII range, with the same
	// u16 min/max length bounds as Str.
	Ascii PrimitiveKind = 0x32

	// F16b is bfloat16; the remaining float kinds are IEEE 754 binary
	// formats plus the 10-byte x87 extended format (F80).
	F16b PrimitiveKind = 0x40
	F16  PrimitiveKind = 0x41
	F32  PrimitiveKind = 0x42
	F64  PrimitiveKind = 0x43
	F80  PrimitiveKind = 0x44
	F128 PrimitiveKind = 0x45
	F256 PrimitiveKind = 0x46
	F512 PrimitiveKind = 0x47
)

// floatWidths holds encoded widths for F16b..F512; F80 breaks the
// power-of-two ladder the integer kinds follow.
var floatWidths = [...]int{2, 2, 4, 8, 10, 16, 32, 64}

// IsValid reports whether k is a member of the closed primitive vocabulary.
func (k PrimitiveKind) IsValid() bool {
	switch {
	case k == Bool, k == Bytes, k == Str, k == Ascii:
		return true
	case k >= U8 && k <= U1024:
		return true
	case k >= I8 && k <= I1024:
		return true
	case k >= F16b && k <= F512:
		return true
	}
	return false
}

// FixedWidth returns the encoded width in bytes for fixed-width kinds and
// ok=false for variable-width kinds (Str, Ascii) and parametric kinds (Bytes).
func (k PrimitiveKind) FixedWidth() (int, bool) {
	switch {
	case k == Bool:
		return 1, true
	case k >= U8 && k <= U1024:
		return 1 << (k - U8), true
	case k >= I8 && k <= I1024:
		return 1 << (k - I8), true
	case k >= F16b && k <= F512:
		return floatWidths[k-F16b], true
	}
	return 0, false
}

func (k PrimitiveKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Bytes:
		return "bytes"
	case Str:
		return "str"
	case Ascii:
		return "ascii"
	case F16b:
		return "f16b"
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case F80:
		return "f80"
	case F128:
		return "f128"
	case F256:
		return "f256"
	case F512:
		return "f512"
	}
	if w, ok := k.FixedWidth(); ok {
		if k >= I8 {
			return fmt.Sprintf("i%d", w*8)
		}
		return fmt.Sprintf("u%d", w*8)
	}
	return fmt.Sprintf("primitive(0x%02x)", uint8(k))
}

// Primitive is a terminal node of the type graph: a kind plus its parameter,
// if the kind takes one (array length for Bytes, length bounds for Str and
// Ascii).
type Primitive struct {
	kind   PrimitiveKind
	size   uint16 // Bytes only
	bounds Sizing // Str and Ascii only
}

// Kind returns the primitive kind.
func (p Primitive) Kind() PrimitiveKind { return p.kind }

// Size returns the array length for Bytes primitives.
func (p Primitive) Size() uint16 { return p.size }

// Bounds returns the length bounds for Str and Ascii primitives.
func (p Primitive) Bounds() Sizing { return p.bounds }

func (p Primitive) String() string {
	switch p.kind {
	case Bytes:
		return fmt.Sprintf("bytes[%d]", p.size)
	case Str, Ascii:
		if p.bounds == SizingDefault() {
			return p.kind.String()
		}
		return fmt.Sprintf("%s[%d..%d]", p.kind, p.bounds.Min, p.bounds.Max)
	}
	return p.kind.String()
}
