package sten_test

import (
	"testing"

	"github.com/strictenc/sten"
	"github.com/strictenc/sten/dsl"
)

func TestDefine_IdempotentRedefinition(t *testing.T) {
	sc := sten.NewSchema()
	point := dsl.Struct().Field("x", dsl.U32()).Field("y", dsl.U32()).MustBuild()
	if err := sc.Define("Point", point); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := sc.Define("Point", point); err != nil {
		t.Fatalf("identical redefinition must be a no-op, got %v", err)
	}
	other := dsl.Struct().Field("x", dsl.U64()).MustBuild()
	if err := sc.Define("Point", other); !sten.HasCode(err, sten.CodeDuplicateName) {
		t.Fatalf("want duplicate_name, got %v", err)
	}
}

func TestDefine_RejectsInvalidName(t *testing.T) {
	sc := sten.NewSchema()
	if err := sc.Define("9lives", sten.Prim(sten.U8)); !sten.HasCode(err, sten.CodeInvalidName) {
		t.Fatalf("want invalid_name, got %v", err)
	}
}

func TestResolve_UnknownType(t *testing.T) {
	sc := sten.NewSchema()
	if _, err := sc.Resolve(sten.Name("Ghost")); !sten.HasCode(err, sten.CodeUnknownType) {
		t.Fatalf("want unknown_type, got %v", err)
	}
}

func TestSeal_ClosedWorld(t *testing.T) {
	sc := sten.NewSchema()
	sc.MustDefine("Holder", dsl.Struct().Field("inner", dsl.Named("Missing")).MustBuild())
	if err := sc.Seal(); !sten.HasCode(err, sten.CodeUnknownType) {
		t.Fatalf("want unknown_type at seal, got %v", err)
	}
}

func TestDefine_AfterSeal(t *testing.T) {
	sc := sten.NewSchema()
	sc.MustDefine("A", sten.Prim(sten.U8))
	if err := sc.Seal(); err != nil {
		t.Fatalf("seal: %v", err)
	}
	if err := sc.Define("B", sten.Prim(sten.U16)); !sten.HasCode(err, sten.CodeSchemaSealed) {
		t.Fatalf("want schema_sealed, got %v", err)
	}
}

func TestRecursion_SelfStructIsUnbounded(t *testing.T) {
	sc := sten.NewSchema()
	self := dsl.Struct().Field("next", dsl.Named("Node")).MustBuild()
	if err := sc.Define("Node", self); !sten.HasCode(err, sten.CodeUnboundedRecursion) {
		t.Fatalf("want unbounded_recursion, got %v", err)
	}
	// The rejected definition must not linger.
	if _, ok := sc.TypeOf("Node"); ok {
		t.Fatalf("rejected definition stayed registered")
	}
}

func TestRecursion_OptionalIndirectionIsProductive(t *testing.T) {
	sc := sten.NewSchema()
	node := dsl.Struct().
		Field("value", dsl.U32()).
		Field("next", dsl.Optional(dsl.Named("Node"))).
		MustBuild()
	if err := sc.Define("Node", node); err != nil {
		t.Fatalf("optional-wrapped self reference must be legal: %v", err)
	}
	if err := sc.Seal(); err != nil {
		t.Fatalf("seal: %v", err)
	}
}

func TestRecursion_ListIndirectionIsProductive(t *testing.T) {
	sc := sten.NewSchema()
	tree := dsl.Struct().
		Field("label", dsl.Str()).
		Field("children", dsl.List(dsl.Named("Tree"))).
		MustBuild()
	sc.MustDefine("Tree", tree)
	if err := sc.Seal(); err != nil {
		t.Fatalf("seal: %v", err)
	}
}

func TestRecursion_MutualThroughForwardRef(t *testing.T) {
	sc := sten.NewSchema()
	// Expr references Term before Term exists; the recursion check defers
	// to the point where the cycle closes.
	expr := dsl.Struct().Field("terms", dsl.List(dsl.Named("Term"))).MustBuild()
	if err := sc.Define("Expr", expr); err != nil {
		t.Fatalf("forward reference must be allowed at define time: %v", err)
	}
	term := dsl.Union().
		Variant(0, "lit", dsl.U64()).
		Variant(1, "sub", dsl.Named("Expr")).
		MustBuild()
	sc.MustDefine("Term", term)
	if err := sc.Seal(); err != nil {
		t.Fatalf("seal: %v", err)
	}
}

func TestRecursion_MutualNonProductive(t *testing.T) {
	sc := sten.NewSchema()
	a := dsl.Struct().Field("b", dsl.Named("B")).MustBuild()
	b := dsl.Struct().Field("a", dsl.Named("A")).MustBuild()
	if err := sc.Define("A", a); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// The cycle closes here: neither struct admits a finite value.
	if err := sc.Define("B", b); !sten.HasCode(err, sten.CodeUnboundedRecursion) {
		t.Fatalf("want unbounded_recursion, got %v", err)
	}
}

func TestRecursion_UnionAllRecursiveIsUnbounded(t *testing.T) {
	sc := sten.NewSchema()
	u := dsl.Union().
		Variant(0, "left", dsl.Named("Loop")).
		Variant(1, "right", dsl.Named("Loop")).
		MustBuild()
	if err := sc.Define("Loop", u); !sten.HasCode(err, sten.CodeUnboundedRecursion) {
		t.Fatalf("want unbounded_recursion, got %v", err)
	}
}

func TestTypes_SortedNames(t *testing.T) {
	sc := sten.NewSchema()
	sc.MustDefine("Zeta", sten.Prim(sten.U8))
	sc.MustDefine("Alpha", sten.Prim(sten.U8))
	got := sc.Types()
	if len(got) != 2 || got[0] != "Alpha" || got[1] != "Zeta" {
		t.Fatalf("unexpected names: %v", got)
	}
}
