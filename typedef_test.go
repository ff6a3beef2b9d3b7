package sten_test

import (
	"testing"

	"github.com/strictenc/sten"
)

func TestStructOf_DuplicateField(t *testing.T) {
	_, err := sten.StructOf(
		sten.Field{Name: "x", Type: sten.Inline(sten.Prim(sten.U32))},
		sten.Field{Name: "x", Type: sten.Inline(sten.Prim(sten.U64))},
	)
	if !sten.HasCode(err, sten.CodeDuplicateField) {
		t.Fatalf("want duplicate_field, got %v", err)
	}
}

func TestStructOf_InvalidFieldName(t *testing.T) {
	_, err := sten.StructOf(sten.Field{Name: "1bad", Type: sten.Inline(sten.Prim(sten.U8))})
	if !sten.HasCode(err, sten.CodeInvalidName) {
		t.Fatalf("want invalid_name, got %v", err)
	}
}

func TestUnionOf_Empty(t *testing.T) {
	_, err := sten.UnionOf()
	if !sten.HasCode(err, sten.CodeEmptyVariantSet) {
		t.Fatalf("want empty_variant_set, got %v", err)
	}
}

func TestUnionOf_DuplicateDiscriminant(t *testing.T) {
	_, err := sten.UnionOf(
		sten.Variant{Discriminant: 3, Name: "a", Type: sten.Inline(sten.Prim(sten.U8))},
		sten.Variant{Discriminant: 3, Name: "b", Type: sten.Inline(sten.Prim(sten.U8))},
	)
	if !sten.HasCode(err, sten.CodeDuplicateDiscriminant) {
		t.Fatalf("want duplicate_discriminant, got %v", err)
	}
}

func TestUnionOf_SortsByDiscriminant(t *testing.T) {
	def, err := sten.UnionOf(
		sten.Variant{Discriminant: 7, Name: "late", Type: sten.Inline(sten.Prim(sten.U8))},
		sten.Variant{Discriminant: 1, Name: "early", Type: sten.Inline(sten.Prim(sten.U8))},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	vs := def.Variants()
	if vs[0].Name != "early" || vs[1].Name != "late" {
		t.Fatalf("variants not sorted by discriminant: %#v", vs)
	}
}

func TestListOf_InvalidBound(t *testing.T) {
	_, err := sten.ListOf(sten.Inline(sten.Prim(sten.U8)), sten.SizingBetween(10, 2))
	if !sten.HasCode(err, sten.CodeInvalidBound) {
		t.Fatalf("want invalid_bound, got %v", err)
	}
}

func TestStrBetween_InvalidBound(t *testing.T) {
	if _, err := sten.StrBetween(5, 1); !sten.HasCode(err, sten.CodeInvalidBound) {
		t.Fatalf("want invalid_bound, got %v", err)
	}
	if _, err := sten.StrBetween(1, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestPrim_PanicsOnParametricKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Prim(Str) should panic")
		}
	}()
	sten.Prim(sten.Str)
}

func TestPrimitiveKind_FixedWidth(t *testing.T) {
	cases := []struct {
		kind  sten.PrimitiveKind
		width int
	}{
		{sten.Bool, 1},
		{sten.U8, 1}, {sten.U16, 2}, {sten.U32, 4}, {sten.U64, 8},
		{sten.U128, 16}, {sten.U256, 32}, {sten.U512, 64}, {sten.U1024, 128},
		{sten.I8, 1}, {sten.I64, 8}, {sten.I1024, 128},
		{sten.F16b, 2}, {sten.F16, 2}, {sten.F32, 4}, {sten.F64, 8},
		{sten.F80, 10}, {sten.F128, 16}, {sten.F256, 32}, {sten.F512, 64},
	}
	for _, tc := range cases {
		w, ok := tc.kind.FixedWidth()
		if !ok || w != tc.width {
			t.Fatalf("%s: want width %d, got %d (ok=%v)", tc.kind, tc.width, w, ok)
		}
	}
	if _, ok := sten.Str.FixedWidth(); ok {
		t.Fatalf("str must not be fixed width")
	}
	if _, ok := sten.Ascii.FixedWidth(); ok {
		t.Fatalf("ascii must not be fixed width")
	}
	if _, ok := sten.Bytes.FixedWidth(); ok {
		t.Fatalf("bytes must not be fixed width")
	}
}

func TestAsciiBetween_InvalidBound(t *testing.T) {
	if _, err := sten.AsciiBetween(9, 3); !sten.HasCode(err, sten.CodeInvalidBound) {
		t.Fatalf("want invalid_bound, got %v", err)
	}
	def, err := sten.AsciiBetween(0, 16)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if def.Prim().Kind() != sten.Ascii {
		t.Fatalf("unexpected kind: %v", def.Prim().Kind())
	}
}
