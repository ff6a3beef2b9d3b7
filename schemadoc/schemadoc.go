// Package schemadoc converts schemas to and from a structured document form
// for interchange as JSON or YAML. The document layer is an external
// collaborator of the core: it parses and renders schema documents, while
// all validation (bounds, duplicates, recursion shape) happens in sten when
// the resulting schema is built and sealed.
package schemadoc

import (
	"fmt"
	"sort"

	"github.com/strictenc/sten"
)

// Document is one schema document: a versioned collection of named types.
type Document struct {
	Version int                  `json:"version" yaml:"version"`
	Types   map[string]*TypeExpr `json:"types" yaml:"types"`
}

// FormatVersion is the document format this package reads and writes.
const FormatVersion = 1

// TypeExpr is the document form of a type reference or definition. Exactly
// one member must be set.
type TypeExpr struct {
	Prim     string        `json:"prim,omitempty" yaml:"prim,omitempty"`
	Bytes    *uint16       `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Str      *Bounds       `json:"str,omitempty" yaml:"str,omitempty"`
	Ascii    *Bounds       `json:"ascii,omitempty" yaml:"ascii,omitempty"`
	Ref      string        `json:"ref,omitempty" yaml:"ref,omitempty"`
	Optional *TypeExpr     `json:"optional,omitempty" yaml:"optional,omitempty"`
	List     *Collection   `json:"list,omitempty" yaml:"list,omitempty"`
	Set      *Collection   `json:"set,omitempty" yaml:"set,omitempty"`
	Map      *Mapping      `json:"map,omitempty" yaml:"map,omitempty"`
	Tuple    []*TypeExpr   `json:"tuple,omitempty" yaml:"tuple,omitempty"`
	Struct   []FieldExpr   `json:"struct,omitempty" yaml:"struct,omitempty"`
	Union    []VariantExpr `json:"union,omitempty" yaml:"union,omitempty"`
}

// Bounds is an inclusive size interval; absent members default to the
// unconstrained bound.
type Bounds struct {
	Min *uint16 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *uint16 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Collection describes a list or set.
type Collection struct {
	Of  *TypeExpr `json:"of" yaml:"of"`
	Min *uint16   `json:"min,omitempty" yaml:"min,omitempty"`
	Max *uint16   `json:"max,omitempty" yaml:"max,omitempty"`
}

// Mapping describes a map.
type Mapping struct {
	Key *TypeExpr `json:"key" yaml:"key"`
	Val *TypeExpr `json:"val" yaml:"val"`
	Min *uint16   `json:"min,omitempty" yaml:"min,omitempty"`
	Max *uint16   `json:"max,omitempty" yaml:"max,omitempty"`
}

// FieldExpr is a struct field; the slice order in TypeExpr.Struct is the
// wire order.
type FieldExpr struct {
	Name string    `json:"name" yaml:"name"`
	Type *TypeExpr `json:"type" yaml:"type"`
}

// VariantExpr is a union variant.
type VariantExpr struct {
	Tag  uint8     `json:"tag" yaml:"tag"`
	Name string    `json:"name" yaml:"name"`
	Type *TypeExpr `json:"type" yaml:"type"`
}

var primKinds = map[string]sten.PrimitiveKind{
	"bool": sten.Bool,
	"u8":   sten.U8, "u16": sten.U16, "u32": sten.U32, "u64": sten.U64,
	"u128": sten.U128, "u256": sten.U256, "u512": sten.U512, "u1024": sten.U1024,
	"i8": sten.I8, "i16": sten.I16, "i32": sten.I32, "i64": sten.I64,
	"i128": sten.I128, "i256": sten.I256, "i512": sten.I512, "i1024": sten.I1024,
	"f16b": sten.F16b, "f16": sten.F16, "f32": sten.F32, "f64": sten.F64,
	"f80": sten.F80, "f128": sten.F128, "f256": sten.F256, "f512": sten.F512,
	"str": sten.Str, "ascii": sten.Ascii,
}

// Schema builds and seals a sten.Schema from the document. Names are defined
// in lexicographic order; canonicalization is declaration-order independent,
// so the order chosen here cannot affect TypeIDs.
func (d *Document) Schema() (*sten.Schema, error) {
	if d.Version != 0 && d.Version != FormatVersion {
		return nil, fmt.Errorf("schemadoc: unsupported document version %d", d.Version)
	}
	sc := sten.NewSchema()
	if err := d.defineAll(sc); err != nil {
		return nil, err
	}
	if err := sc.Seal(); err != nil {
		return nil, err
	}
	return sc, nil
}

// defineAll registers the document's types into an open schema.
func (d *Document) defineAll(sc *sten.Schema) error {
	names := make([]string, 0, len(d.Types))
	for name := range d.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def, err := exprToDef(d.Types[name], name)
		if err != nil {
			return err
		}
		if err := sc.Define(name, def); err != nil {
			return err
		}
	}
	return nil
}

func exprToRef(e *TypeExpr, at string) (sten.Ref, error) {
	if e == nil {
		return sten.Ref{}, fmt.Errorf("schemadoc: missing type expression at %s", at)
	}
	if e.Ref != "" {
		return sten.Name(e.Ref), nil
	}
	def, err := exprToDef(e, at)
	if err != nil {
		return sten.Ref{}, err
	}
	return sten.Inline(def), nil
}

func exprToDef(e *TypeExpr, at string) (sten.TypeDef, error) {
	var zero sten.TypeDef
	if e == nil {
		return zero, fmt.Errorf("schemadoc: missing type expression at %s", at)
	}
	switch {
	case e.Prim != "":
		kind, ok := primKinds[e.Prim]
		if !ok {
			return zero, fmt.Errorf("schemadoc: unknown primitive %q at %s", e.Prim, at)
		}
		switch kind {
		case sten.Str:
			return sten.StrAny(), nil
		case sten.Ascii:
			return sten.AsciiAny(), nil
		}
		return sten.Prim(kind), nil

	case e.Bytes != nil:
		return sten.BytesN(*e.Bytes), nil

	case e.Str != nil:
		min, max := boundsOf(e.Str.Min, e.Str.Max)
		return sten.StrBetween(min, max)

	case e.Ascii != nil:
		min, max := boundsOf(e.Ascii.Min, e.Ascii.Max)
		return sten.AsciiBetween(min, max)

	case e.Optional != nil:
		inner, err := exprToRef(e.Optional, at+"/optional")
		if err != nil {
			return zero, err
		}
		return sten.Optional(inner)

	case e.List != nil:
		elem, err := exprToRef(e.List.Of, at+"/list")
		if err != nil {
			return zero, err
		}
		min, max := boundsOf(e.List.Min, e.List.Max)
		return sten.ListOf(elem, sten.SizingBetween(min, max))

	case e.Set != nil:
		elem, err := exprToRef(e.Set.Of, at+"/set")
		if err != nil {
			return zero, err
		}
		min, max := boundsOf(e.Set.Min, e.Set.Max)
		return sten.SetOf(elem, sten.SizingBetween(min, max))

	case e.Map != nil:
		key, err := exprToRef(e.Map.Key, at+"/map/key")
		if err != nil {
			return zero, err
		}
		val, err := exprToRef(e.Map.Val, at+"/map/val")
		if err != nil {
			return zero, err
		}
		min, max := boundsOf(e.Map.Min, e.Map.Max)
		return sten.MapOf(key, val, sten.SizingBetween(min, max))

	case e.Tuple != nil:
		items := make([]sten.Ref, 0, len(e.Tuple))
		for i, m := range e.Tuple {
			r, err := exprToRef(m, fmt.Sprintf("%s/tuple/%d", at, i))
			if err != nil {
				return zero, err
			}
			items = append(items, r)
		}
		return sten.TupleOf(items...)

	case e.Struct != nil:
		fields := make([]sten.Field, 0, len(e.Struct))
		for _, f := range e.Struct {
			r, err := exprToRef(f.Type, at+"/"+f.Name)
			if err != nil {
				return zero, err
			}
			fields = append(fields, sten.Field{Name: f.Name, Type: r})
		}
		return sten.StructOf(fields...)

	case e.Union != nil:
		variants := make([]sten.Variant, 0, len(e.Union))
		for _, v := range e.Union {
			r, err := exprToRef(v.Type, at+"/"+v.Name)
			if err != nil {
				return zero, err
			}
			variants = append(variants, sten.Variant{Discriminant: v.Tag, Name: v.Name, Type: r})
		}
		return sten.UnionOf(variants...)

	case e.Ref != "":
		return zero, fmt.Errorf("schemadoc: top-level alias %q at %s is not a definition", e.Ref, at)
	}
	return zero, fmt.Errorf("schemadoc: empty type expression at %s", at)
}

func boundsOf(min, max *uint16) (uint16, uint16) {
	lo, hi := sten.SizingDefault().Min, sten.SizingDefault().Max
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return lo, hi
}

// FromSchema renders a schema back into document form.
func FromSchema(sc *sten.Schema) (*Document, error) {
	doc := &Document{Version: FormatVersion, Types: make(map[string]*TypeExpr, sc.Len())}
	for _, name := range sc.Types() {
		def, _ := sc.TypeOf(name)
		e, err := defToExpr(def)
		if err != nil {
			return nil, err
		}
		doc.Types[name] = e
	}
	return doc, nil
}

func defToExpr(def sten.TypeDef) (*TypeExpr, error) {
	switch def.Kind() {
	case sten.KindPrimitive:
		p := def.Prim()
		switch p.Kind() {
		case sten.Bytes:
			n := p.Size()
			return &TypeExpr{Bytes: &n}, nil
		case sten.Str, sten.Ascii:
			b := p.Bounds()
			if b == sten.SizingDefault() {
				return &TypeExpr{Prim: p.Kind().String()}, nil
			}
			min, max := b.Min, b.Max
			bounds := &Bounds{Min: &min, Max: &max}
			if p.Kind() == sten.Ascii {
				return &TypeExpr{Ascii: bounds}, nil
			}
			return &TypeExpr{Str: bounds}, nil
		}
		return &TypeExpr{Prim: p.Kind().String()}, nil

	case sten.KindOptional:
		inner, err := refToExprNoSchema(def.Inner())
		if err != nil {
			return nil, err
		}
		return &TypeExpr{Optional: inner}, nil

	case sten.KindList, sten.KindSet:
		elem, err := refToExprNoSchema(def.Inner())
		if err != nil {
			return nil, err
		}
		c := &Collection{Of: elem}
		c.Min, c.Max = exportBounds(def.Bounds())
		if def.Kind() == sten.KindList {
			return &TypeExpr{List: c}, nil
		}
		return &TypeExpr{Set: c}, nil

	case sten.KindMap:
		key, err := refToExprNoSchema(def.Key())
		if err != nil {
			return nil, err
		}
		val, err := refToExprNoSchema(def.Val())
		if err != nil {
			return nil, err
		}
		m := &Mapping{Key: key, Val: val}
		m.Min, m.Max = exportBounds(def.Bounds())
		return &TypeExpr{Map: m}, nil

	case sten.KindTuple:
		items := def.Items()
		out := make([]*TypeExpr, 0, len(items))
		for _, r := range items {
			e, err := refToExprNoSchema(r)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return &TypeExpr{Tuple: out}, nil

	case sten.KindStruct:
		fields := def.Fields()
		out := make([]FieldExpr, 0, len(fields))
		for _, f := range fields {
			e, err := refToExprNoSchema(f.Type)
			if err != nil {
				return nil, err
			}
			out = append(out, FieldExpr{Name: f.Name, Type: e})
		}
		return &TypeExpr{Struct: out}, nil

	case sten.KindUnion:
		variants := def.Variants()
		out := make([]VariantExpr, 0, len(variants))
		for _, v := range variants {
			e, err := refToExprNoSchema(v.Type)
			if err != nil {
				return nil, err
			}
			out = append(out, VariantExpr{Tag: v.Discriminant, Name: v.Name, Type: e})
		}
		return &TypeExpr{Union: out}, nil
	}
	return nil, fmt.Errorf("schemadoc: cannot export kind %s", def.Kind())
}

// refToExprNoSchema renders a reference without registry access: named refs
// stay names, inline refs recurse into their definition.
func refToExprNoSchema(r sten.Ref) (*TypeExpr, error) {
	if r.IsNamed() {
		return &TypeExpr{Ref: r.TypeName()}, nil
	}
	def, ok := r.InlineDef()
	if !ok {
		return nil, fmt.Errorf("schemadoc: unresolvable inline reference")
	}
	return defToExpr(def)
}

func exportBounds(s sten.Sizing) (*uint16, *uint16) {
	var min, max *uint16
	if s.Min != sten.SizingDefault().Min {
		m := s.Min
		min = &m
	}
	if s.Max != sten.SizingDefault().Max {
		m := s.Max
		max = &m
	}
	return min, max
}
