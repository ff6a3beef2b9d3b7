package sten

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the closed set of type constructors. The set is fixed by
// the wire format; extending it is a format version bump, so TypeDef is a
// closed tagged variant rather than an open interface.
type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindOptional
	KindList
	KindSet
	KindMap
	KindTuple
	KindStruct
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindOptional:
		return "optional"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Field is a named struct member. Field position is semantic: strict encoding
// has no field tagging, so the declared order determines wire layout.
type Field struct {
	Name string
	Type Ref
}

// Variant is a union member. The discriminant is the wire-stable identity of
// the variant; the name is for humans and schema documents.
type Variant struct {
	Discriminant uint8
	Name         string
	Type         Ref
}

// TypeDef is one node of the type graph: a constructor applied to type
// references. Values are immutable once constructed; all mutation-looking
// operations happen in constructors, which validate eagerly so that a caller
// never holds a malformed definition.
type TypeDef struct {
	kind     Kind
	prim     Primitive
	inner    Ref // Optional, List, Set element
	key, val Ref // Map
	bounds   Sizing
	items    []Ref
	fields   []Field
	variants []Variant // kept sorted by discriminant
}

// Kind returns the constructor kind.
func (d TypeDef) Kind() Kind { return d.kind }

// Prim returns the primitive payload for KindPrimitive definitions.
func (d TypeDef) Prim() Primitive { return d.prim }

// Inner returns the element reference for Optional, List and Set.
func (d TypeDef) Inner() Ref { return d.inner }

// Key returns the key reference for Map.
func (d TypeDef) Key() Ref { return d.key }

// Val returns the value reference for Map.
func (d TypeDef) Val() Ref { return d.val }

// Bounds returns the size bounds for List, Set and Map.
func (d TypeDef) Bounds() Sizing { return d.bounds }

// Items returns the member references of a Tuple.
func (d TypeDef) Items() []Ref { return append([]Ref(nil), d.items...) }

// Fields returns the struct fields in declared order.
func (d TypeDef) Fields() []Field { return append([]Field(nil), d.fields...) }

// Variants returns the union variants in ascending discriminant order.
func (d TypeDef) Variants() []Variant { return append([]Variant(nil), d.variants...) }

func (d TypeDef) String() string {
	switch d.kind {
	case KindPrimitive:
		return d.prim.String()
	case KindOptional:
		return d.inner.String() + "?"
	case KindList:
		return "list<" + d.inner.String() + ">"
	case KindSet:
		return "set<" + d.inner.String() + ">"
	case KindMap:
		return "map<" + d.key.String() + "," + d.val.String() + ">"
	case KindTuple:
		parts := make([]string, len(d.items))
		for i, r := range d.items {
			parts[i] = r.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	case KindStruct:
		return fmt.Sprintf("struct{%d fields}", len(d.fields))
	case KindUnion:
		return fmt.Sprintf("union{%d variants}", len(d.variants))
	}
	return "<zero typedef>"
}

// Prim builds a primitive definition for fixed-width kinds (Bool, the
// integer family and the float family). Use BytesN, StrBetween and
// AsciiBetween for the parametric kinds.
func Prim(k PrimitiveKind) TypeDef {
	if _, ok := k.FixedWidth(); !ok {
		panic(fmt.Sprintf("sten: Prim called with parametric kind %s", k))
	}
	return TypeDef{kind: KindPrimitive, prim: Primitive{kind: k}}
}

// BytesN builds a fixed-size byte array primitive of n bytes.
func BytesN(n uint16) TypeDef {
	return TypeDef{kind: KindPrimitive, prim: Primitive{kind: Bytes, size: n}}
}

// StrAny builds an unbounded UTF-8 string primitive.
func StrAny() TypeDef {
	return TypeDef{kind: KindPrimitive, prim: Primitive{kind: Str, bounds: SizingDefault()}}
}

// StrBetween builds a UTF-8 string primitive with inclusive length bounds.
func StrBetween(min, max uint16) (TypeDef, error) {
	return boundedString(Str, min, max)
}

// AsciiAny builds an unbounded ASCII string primitive.
func AsciiAny() TypeDef {
	return TypeDef{kind: KindPrimitive, prim: Primitive{kind: Ascii, bounds: SizingDefault()}}
}

// AsciiBetween builds an ASCII string primitive with inclusive length bounds.
func AsciiBetween(min, max uint16) (TypeDef, error) {
	return boundedString(Ascii, min, max)
}

func boundedString(kind PrimitiveKind, min, max uint16) (TypeDef, error) {
	s := SizingBetween(min, max)
	if !s.valid() {
		return TypeDef{}, issuef("/", CodeInvalidBound, map[string]any{"min": min, "max": max})
	}
	return TypeDef{kind: KindPrimitive, prim: Primitive{kind: kind, bounds: s}}, nil
}

// Optional wraps a type so that its values may be absent. Optionality is part
// of a type's identity, not a compatibility relaxation.
func Optional(inner Ref) (TypeDef, error) {
	if inner.isZero() {
		return TypeDef{}, issuef("/", CodeUnresolvableReference, nil)
	}
	return TypeDef{kind: KindOptional, inner: inner}, nil
}

// ListOf builds an ordered, bounded sequence type.
func ListOf(elem Ref, bounds Sizing) (TypeDef, error) {
	return collection(KindList, elem, bounds)
}

// SetOf builds a bounded collection of unique elements. Uniqueness and total
// order are enforced over the elements' strict-encoded bytes, so any element
// type is admissible.
func SetOf(elem Ref, bounds Sizing) (TypeDef, error) {
	return collection(KindSet, elem, bounds)
}

func collection(kind Kind, elem Ref, bounds Sizing) (TypeDef, error) {
	if elem.isZero() {
		return TypeDef{}, issuef("/", CodeUnresolvableReference, nil)
	}
	if !bounds.valid() {
		return TypeDef{}, issuef("/", CodeInvalidBound, map[string]any{"min": bounds.Min, "max": bounds.Max})
	}
	return TypeDef{kind: kind, inner: elem, bounds: bounds}, nil
}

// MapOf builds a bounded mapping with unique keys, ordered by their
// strict-encoded bytes.
func MapOf(key, val Ref, bounds Sizing) (TypeDef, error) {
	if key.isZero() || val.isZero() {
		return TypeDef{}, issuef("/", CodeUnresolvableReference, nil)
	}
	if !bounds.valid() {
		return TypeDef{}, issuef("/", CodeInvalidBound, map[string]any{"min": bounds.Min, "max": bounds.Max})
	}
	return TypeDef{kind: KindMap, key: key, val: val, bounds: bounds}, nil
}

// TupleOf builds a fixed, ordered sequence of member types. Member order is
// semantic (it is the wire layout) and preserved as declared.
func TupleOf(items ...Ref) (TypeDef, error) {
	if len(items) > maxMemberCount {
		return TypeDef{}, issuef("/", CodeInvalidBound, map[string]any{"count": len(items)})
	}
	for _, r := range items {
		if r.isZero() {
			return TypeDef{}, issuef("/", CodeUnresolvableReference, nil)
		}
	}
	return TypeDef{kind: KindTuple, items: append([]Ref(nil), items...)}, nil
}

// StructOf builds a named-field structure. Field names must be unique and
// field order is preserved as declared: position determines encoding order.
func StructOf(fields ...Field) (TypeDef, error) {
	if len(fields) > maxMemberCount {
		return TypeDef{}, issuef("/", CodeInvalidBound, map[string]any{"count": len(fields)})
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !validName(f.Name) {
			return TypeDef{}, issuef("/"+f.Name, CodeInvalidName, map[string]any{"name": f.Name})
		}
		if f.Type.isZero() {
			return TypeDef{}, issuef("/"+f.Name, CodeUnresolvableReference, nil)
		}
		if _, dup := seen[f.Name]; dup {
			return TypeDef{}, issuef("/"+f.Name, CodeDuplicateField, map[string]any{"name": f.Name})
		}
		seen[f.Name] = struct{}{}
	}
	return TypeDef{kind: KindStruct, fields: append([]Field(nil), fields...)}, nil
}

// UnionOf builds a tagged union. Discriminants and variant names must be
// unique and at least one variant must be declared. Variants are stored in
// ascending discriminant order: the discriminant, not declaration order, is
// the wire-stable identity of a variant.
func UnionOf(variants ...Variant) (TypeDef, error) {
	if len(variants) == 0 {
		return TypeDef{}, issuef("/", CodeEmptyVariantSet, nil)
	}
	seenDisc := make(map[uint8]struct{}, len(variants))
	seenName := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if !validName(v.Name) {
			return TypeDef{}, issuef("/"+v.Name, CodeInvalidName, map[string]any{"name": v.Name})
		}
		if v.Type.isZero() {
			return TypeDef{}, issuef("/"+v.Name, CodeUnresolvableReference, nil)
		}
		if _, dup := seenDisc[v.Discriminant]; dup {
			return TypeDef{}, issuef("/"+v.Name, CodeDuplicateDiscriminant, map[string]any{"discriminant": v.Discriminant})
		}
		if _, dup := seenName[v.Name]; dup {
			return TypeDef{}, issuef("/"+v.Name, CodeDuplicateField, map[string]any{"name": v.Name})
		}
		seenDisc[v.Discriminant] = struct{}{}
		seenName[v.Name] = struct{}{}
	}
	sorted := append([]Variant(nil), variants...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Discriminant < sorted[j].Discriminant })
	return TypeDef{kind: KindUnion, variants: sorted}, nil
}

// maxMemberCount caps tuple arity and struct field counts: member counts are
// encoded with a u16 prefix in the canonical form.
const maxMemberCount = 0xFFFF

// refs returns every direct type reference of the definition.
func (d TypeDef) refs() []Ref {
	switch d.kind {
	case KindOptional, KindList, KindSet:
		return []Ref{d.inner}
	case KindMap:
		return []Ref{d.key, d.val}
	case KindTuple:
		return d.items
	case KindStruct:
		out := make([]Ref, len(d.fields))
		for i, f := range d.fields {
			out[i] = f.Type
		}
		return out
	case KindUnion:
		out := make([]Ref, len(d.variants))
		for i, v := range d.variants {
			out[i] = v.Type
		}
		return out
	}
	return nil
}

// equalDef compares two definitions structurally, without a registry: named
// references are equal only when the names match. Used for idempotent
// redefinition checks, where alias-level equality cannot yet be decided.
func equalDef(a, b TypeDef) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindPrimitive:
		return a.prim == b.prim
	case KindOptional, KindList, KindSet:
		return a.bounds == b.bounds && equalRef(a.inner, b.inner)
	case KindMap:
		return a.bounds == b.bounds && equalRef(a.key, b.key) && equalRef(a.val, b.val)
	case KindTuple:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !equalRef(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if a.fields[i].Name != b.fields[i].Name || !equalRef(a.fields[i].Type, b.fields[i].Type) {
				return false
			}
		}
		return true
	case KindUnion:
		if len(a.variants) != len(b.variants) {
			return false
		}
		for i := range a.variants {
			av, bv := a.variants[i], b.variants[i]
			if av.Discriminant != bv.Discriminant || av.Name != bv.Name || !equalRef(av.Type, bv.Type) {
				return false
			}
		}
		return true
	}
	return false
}

func equalRef(a, b Ref) bool {
	if a.IsNamed() != b.IsNamed() {
		return false
	}
	if a.IsNamed() {
		return a.name == b.name
	}
	if a.def == nil || b.def == nil {
		return a.def == b.def
	}
	return equalDef(*a.def, *b.def)
}
