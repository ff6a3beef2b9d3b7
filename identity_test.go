package sten_test

import (
	"strings"
	"testing"

	"github.com/strictenc/sten"
	"github.com/strictenc/sten/dsl"
)

func TestIdentify_StableAcrossConstructionOrder(t *testing.T) {
	point := func() sten.TypeDef {
		return dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).MustBuild()
	}
	wrapper := func() sten.TypeDef {
		return dsl.Struct().Field("p", dsl.Named("Point")).MustBuild()
	}

	sa := sten.NewSchema()
	sa.MustDefine("Point", point())
	sa.MustDefine("Wrapper", wrapper())

	sb := sten.NewSchema()
	sb.MustDefine("Wrapper", wrapper())
	sb.MustDefine("Point", point())

	for _, name := range []string{"Point", "Wrapper"} {
		ia, err := sa.IdentifyName(name)
		if err != nil {
			t.Fatalf("identify %s: %v", name, err)
		}
		ib, err := sb.IdentifyName(name)
		if err != nil {
			t.Fatalf("identify %s: %v", name, err)
		}
		if ia != ib {
			t.Fatalf("%s: TypeID differs across construction orders: %s vs %s", name, ia, ib)
		}
	}
}

func TestIdentify_EqualIffCanonicalEqual(t *testing.T) {
	sc := sten.NewSchema()
	a := sten.Inline(dsl.Struct().Field("n", dsl.U64()).MustBuild())
	b := sten.Inline(dsl.Struct().Field("n", dsl.U64()).MustBuild())
	c := sten.Inline(dsl.Struct().Field("n", dsl.U32()).MustBuild())

	ia, err := sc.Identify(a)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	ib, err := sc.Identify(b)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	ic, err := sc.Identify(c)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if ia != ib {
		t.Fatalf("structurally identical defs got distinct TypeIDs")
	}
	if ia == ic {
		t.Fatalf("distinct defs got the same TypeID")
	}

	rel, err := sc.CompareIn(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rel != sten.Identical {
		t.Fatalf("equal TypeID must imply Identical, got %v", rel)
	}
}

func TestTypeID_RendersAsDigest(t *testing.T) {
	sc := sten.NewSchema()
	id, err := sc.Identify(dsl.U8())
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if !strings.HasPrefix(id.String(), "sha256:") {
		t.Fatalf("unexpected rendering: %s", id)
	}
	if id.Digest().Algorithm().String() != "sha256" {
		t.Fatalf("unexpected algorithm: %s", id.Digest().Algorithm())
	}
	// TypeIDs are comparable and usable as map keys.
	seen := map[sten.TypeID]bool{id: true}
	if !seen[id] {
		t.Fatalf("TypeID must work as a map key")
	}
}
