package sten_test

import (
	"testing"

	"github.com/strictenc/sten"
	"github.com/strictenc/sten/dsl"
)

func mustList(t *testing.T, elem sten.Ref, min, max uint16) sten.Ref {
	t.Helper()
	def, err := sten.ListOf(elem, sten.SizingBetween(min, max))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return sten.Inline(def)
}

func TestCompare_StructTrailingFieldExtends(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).MustBuild())
	b := sten.Inline(dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).Field("z", dsl.U32()).MustBuild())

	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Extends {
		t.Fatalf("want Extends, got %v", rel)
	}
	back, err := sc.CompareIn(b, a)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if back != sten.ExtendedBy {
		t.Fatalf("want ExtendedBy, got %v", back)
	}
}

func TestCompare_StructRetypedFieldIncompatible(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Struct().Field("x", dsl.U32()).MustBuild())
	b := sten.Inline(dsl.Struct().Field("x", dsl.U64()).MustBuild())
	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("no implicit widening: want Incompatible, got %v", rel)
	}
}

func TestCompare_StructReorderedIncompatible(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).MustBuild())
	b := sten.Inline(dsl.Struct().Field("y", dsl.U32()).Field("x", dsl.U32()).Field("z", dsl.U32()).MustBuild())
	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("field positions are semantic: want Incompatible, got %v", rel)
	}
}

func TestCompare_PrimitiveNoWidening(t *testing.T) {
	sc := sten.NewSchema()
	rel, err := sc.CompareIn(dsl.U32(), dsl.U64())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("want Incompatible, got %v", rel)
	}
}

func TestCompare_OptionalityIsIdentity(t *testing.T) {
	sc := sten.NewSchema()
	rel, err := sc.CompareIn(dsl.U32(), dsl.Optional(dsl.U32()))
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("Optional(T) must not extend T: got %v", rel)
	}
}

func TestCompare_ListBoundWidening(t *testing.T) {
	sc := sten.NewSchema()
	narrow := mustList(t, dsl.U8(), 1, 10)
	wide := mustList(t, dsl.U8(), 0, 20)

	rel, err := sc.CompareIn(narrow, wide)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Extends {
		t.Fatalf("superset bounds must extend: got %v", rel)
	}

	retyped := mustList(t, dsl.U16(), 0, 20)
	rel, err = sc.CompareIn(narrow, retyped)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("element relaxation is never compatible: got %v", rel)
	}

	disjoint := mustList(t, dsl.U8(), 5, 20)
	rel, err = sc.CompareIn(narrow, disjoint)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("overlapping but non-nested bounds: want Incompatible, got %v", rel)
	}
}

func TestCompare_UnionAdditiveVariants(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Union().
		Variant(0, "a", dsl.U8()).
		Variant(1, "b", dsl.U8()).
		MustBuild())
	b := sten.Inline(dsl.Union().
		Variant(0, "a", dsl.U8()).
		Variant(1, "b", dsl.U8()).
		Variant(2, "c", dsl.U16()).
		MustBuild())

	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Extends {
		t.Fatalf("new discriminants are additive: got %v", rel)
	}
}

func TestCompare_UnionRetypedVariantIncompatible(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Union().
		Variant(0, "a", dsl.U8()).
		Variant(1, "b", dsl.U8()).
		MustBuild())
	b := sten.Inline(dsl.Union().
		Variant(0, "a", dsl.U8()).
		Variant(1, "b", dsl.U16()).
		MustBuild())

	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("retyped discriminant: want Incompatible, got %v", rel)
	}
}

func TestCompare_KindMismatch(t *testing.T) {
	sc := sten.NewSchema()
	st := sten.Inline(dsl.Struct().Field("a", dsl.U8()).MustBuild())
	un := sten.Inline(dsl.Union().Variant(0, "a", dsl.U8()).MustBuild())
	rel, err := sc.CompareIn(st, un)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("struct vs union: want Incompatible, got %v", rel)
	}
}

func TestCompare_AliasesAreIdentical(t *testing.T) {
	sc := sten.NewSchema()
	shape := dsl.Struct().Field("n", dsl.U64()).MustBuild()
	sc.MustDefine("A", shape)
	sc.MustDefine("B", shape)
	rel, err := sc.CompareIn(sten.Name("A"), sten.Name("B"))
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Identical {
		t.Fatalf("same shape under different names: want Identical, got %v", rel)
	}
}

func TestCompareSchemas(t *testing.T) {
	base := func() *sten.Schema {
		sc := sten.NewSchema()
		sc.MustDefine("Point", dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).MustBuild())
		return sc
	}

	// Adding a type and extending an existing one aggregates to Extends.
	grown := sten.NewSchema()
	grown.MustDefine("Point", dsl.Struct().
		Field("x", dsl.U32()).Field("y", dsl.U32()).Field("z", dsl.U32()).
		MustBuild())
	grown.MustDefine("Color", dsl.Struct().Field("rgb", dsl.BytesN(3)).MustBuild())

	rel, err := sten.CompareSchemas(base(), grown)
	if err != nil {
		t.Fatalf("compare schemas: %v", err)
	}
	if rel != sten.Extends {
		t.Fatalf("want Extends, got %v", rel)
	}

	// A retyped shared name collapses to Incompatible.
	broken := sten.NewSchema()
	broken.MustDefine("Point", dsl.Struct().Field("x", dsl.U64()).MustBuild())
	rel, err = sten.CompareSchemas(base(), broken)
	if err != nil {
		t.Fatalf("compare schemas: %v", err)
	}
	if rel != sten.Incompatible {
		t.Fatalf("want Incompatible, got %v", rel)
	}

	// Identical schemas.
	rel, err = sten.CompareSchemas(base(), base())
	if err != nil {
		t.Fatalf("compare schemas: %v", err)
	}
	if rel != sten.Identical {
		t.Fatalf("want Identical, got %v", rel)
	}
}
