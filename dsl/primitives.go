package dsl

import (
	"github.com/strictenc/sten"
)

// Bool returns the boolean primitive.
func Bool() sten.Ref { return sten.Inline(sten.Prim(sten.Bool)) }

// U8 returns the unsigned 8-bit integer primitive.
func U8() sten.Ref { return sten.Inline(sten.Prim(sten.U8)) }

// U16 returns the unsigned 16-bit integer primitive.
func U16() sten.Ref { return sten.Inline(sten.Prim(sten.U16)) }

// U32 returns the unsigned 32-bit integer primitive.
func U32() sten.Ref { return sten.Inline(sten.Prim(sten.U32)) }

// U64 returns the unsigned 64-bit integer primitive.
func U64() sten.Ref { return sten.Inline(sten.Prim(sten.U64)) }

// U128 returns the unsigned 128-bit integer primitive.
func U128() sten.Ref { return sten.Inline(sten.Prim(sten.U128)) }

// U256 returns the unsigned 256-bit integer primitive.
func U256() sten.Ref { return sten.Inline(sten.Prim(sten.U256)) }

// U512 returns the unsigned 512-bit integer primitive.
func U512() sten.Ref { return sten.Inline(sten.Prim(sten.U512)) }

// U1024 returns the unsigned 1024-bit integer primitive.
func U1024() sten.Ref { return sten.Inline(sten.Prim(sten.U1024)) }

// I8 returns the signed 8-bit integer primitive.
func I8() sten.Ref { return sten.Inline(sten.Prim(sten.I8)) }

// I16 returns the signed 16-bit integer primitive.
func I16() sten.Ref { return sten.Inline(sten.Prim(sten.I16)) }

// I32 returns the signed 32-bit integer primitive.
func I32() sten.Ref { return sten.Inline(sten.Prim(sten.I32)) }

// I64 returns the signed 64-bit integer primitive.
func I64() sten.Ref { return sten.Inline(sten.Prim(sten.I64)) }

// I128 returns the signed 128-bit integer primitive.
func I128() sten.Ref { return sten.Inline(sten.Prim(sten.I128)) }

// I256 returns the signed 256-bit integer primitive.
func I256() sten.Ref { return sten.Inline(sten.Prim(sten.I256)) }

// I512 returns the signed 512-bit integer primitive.
func I512() sten.Ref { return sten.Inline(sten.Prim(sten.I512)) }

// I1024 returns the signed 1024-bit integer primitive.
func I1024() sten.Ref { return sten.Inline(sten.Prim(sten.I1024)) }

// F16b returns the bfloat16 primitive.
func F16b() sten.Ref { return sten.Inline(sten.Prim(sten.F16b)) }

// F16 returns the IEEE 754 half-precision float primitive.
func F16() sten.Ref { return sten.Inline(sten.Prim(sten.F16)) }

// F32 returns the IEEE 754 single-precision float primitive.
func F32() sten.Ref { return sten.Inline(sten.Prim(sten.F32)) }

// F64 returns the IEEE 754 double-precision float primitive.
func F64() sten.Ref { return sten.Inline(sten.Prim(sten.F64)) }

// F80 returns the x87 extended-precision float primitive.
func F80() sten.Ref { return sten.Inline(sten.Prim(sten.F80)) }

// F128 returns the IEEE 754 quadruple-precision float primitive.
func F128() sten.Ref { return sten.Inline(sten.Prim(sten.F128)) }

// F256 returns the IEEE 754 octuple-precision float primitive.
func F256() sten.Ref { return sten.Inline(sten.Prim(sten.F256)) }

// F512 returns the 512-bit float primitive.
func F512() sten.Ref { return sten.Inline(sten.Prim(sten.F512)) }

// BytesN returns the fixed-size byte array primitive of n bytes.
func BytesN(n uint16) sten.Ref { return sten.Inline(sten.BytesN(n)) }

// Str returns the unbounded UTF-8 string primitive.
func Str() sten.Ref { return sten.Inline(sten.StrAny()) }

// StrBetween returns a UTF-8 string primitive with inclusive length bounds,
// panicking on unsatisfiable bounds.
func StrBetween(min, max uint16) sten.Ref {
	def, err := sten.StrBetween(min, max)
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}

// Ascii returns the unbounded ASCII string primitive.
func Ascii() sten.Ref { return sten.Inline(sten.AsciiAny()) }

// AsciiBetween returns an ASCII string primitive with inclusive length
// bounds, panicking on unsatisfiable bounds.
func AsciiBetween(min, max uint16) sten.Ref {
	def, err := sten.AsciiBetween(min, max)
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}
