package sten

import (
	"github.com/strictenc/sten/codec"
)

// Canonical-form constructor tags. These bytes are part of the versioned wire
// contract: independent implementations must match them byte-for-byte.
const (
	cBackRef   = 0x00
	cPrimitive = 0x01
	cOptional  = 0x02
	cList      = 0x03
	cSet       = 0x04
	cMap       = 0x05
	cTuple     = 0x06
	cStruct    = 0x07
	cUnion     = 0x08
)

// Canonical serializes the definition behind ref into its canonical form:
// a byte sequence equal for two references iff the referenced definitions
// are structurally identical, independent of declaration order and of which
// names alias a given shape. Member counts and length prefixes are
// little-endian u16; union variants are emitted in ascending discriminant
// order; a reference back into the active descent stack is emitted as a
// back-reference marker carrying the relative depth, which keeps the form
// finite for productive-recursive types.
//
// Back-reference depth counts named types on the descent path; inline
// definitions contribute no frames. Renaming any type on a cycle therefore
// leaves the form unchanged, but replacing a named intermediate with an
// inline definition does not: which graph nodes carry names is part of the
// recursion structure the form captures.
//
// A named reference that cannot be resolved fails with
// unresolvable_reference: registry invariants were bypassed and the caller
// should treat the error as non-recoverable.
func (s *Schema) Canonical(ref Ref) ([]byte, error) {
	enc := &canonEncoder{schema: s, w: codec.NewWriter()}
	if err := enc.encodeRef(ref); err != nil {
		return nil, err
	}
	return enc.w.Bytes(), nil
}

// CanonicalOf is Canonical for a registered name.
func (s *Schema) CanonicalOf(name string) ([]byte, error) {
	return s.Canonical(Name(name))
}

type canonEncoder struct {
	schema *Schema
	w      *codec.Writer
	stack  []string // named types on the active descent path
}

func (e *canonEncoder) encodeRef(ref Ref) error {
	if ref.IsNamed() {
		// A name already being canonicalized higher in the stack marks a
		// cycle: emit its relative depth instead of re-descending.
		for i := len(e.stack) - 1; i >= 0; i-- {
			if e.stack[i] == ref.name {
				e.w.U8(cBackRef)
				e.w.U16(uint16(len(e.stack) - 1 - i))
				return nil
			}
		}
		def, err := e.schema.Resolve(ref)
		if err != nil {
			return issuef("/"+ref.name, CodeUnresolvableReference, map[string]any{"name": ref.name})
		}
		e.stack = append(e.stack, ref.name)
		err = e.encodeDef(def)
		e.stack = e.stack[:len(e.stack)-1]
		return err
	}
	if ref.def == nil {
		return issuef("/", CodeUnresolvableReference, nil)
	}
	return e.encodeDef(*ref.def)
}

func (e *canonEncoder) encodeDef(def TypeDef) error {
	switch def.kind {
	case KindPrimitive:
		e.w.U8(cPrimitive)
		e.w.U8(uint8(def.prim.kind))
		switch def.prim.kind {
		case Bytes:
			e.w.U16(def.prim.size)
		case Str, Ascii:
			e.w.U16(def.prim.bounds.Min)
			e.w.U16(def.prim.bounds.Max)
		}
		return nil
	case KindOptional:
		e.w.U8(cOptional)
		return e.encodeRef(def.inner)
	case KindList, KindSet:
		if def.kind == KindList {
			e.w.U8(cList)
		} else {
			e.w.U8(cSet)
		}
		e.w.U16(def.bounds.Min)
		e.w.U16(def.bounds.Max)
		return e.encodeRef(def.inner)
	case KindMap:
		e.w.U8(cMap)
		e.w.U16(def.bounds.Min)
		e.w.U16(def.bounds.Max)
		if err := e.encodeRef(def.key); err != nil {
			return err
		}
		return e.encodeRef(def.val)
	case KindTuple:
		e.w.U8(cTuple)
		e.w.U16(uint16(len(def.items)))
		for _, r := range def.items {
			if err := e.encodeRef(r); err != nil {
				return err
			}
		}
		return nil
	case KindStruct:
		// Field order is preserved as declared: strict encoding has no field
		// tagging, so position is semantic.
		e.w.U8(cStruct)
		e.w.U16(uint16(len(def.fields)))
		for _, f := range def.fields {
			e.w.U8(uint8(len(f.Name)))
			e.w.Raw([]byte(f.Name))
			if err := e.encodeRef(f.Type); err != nil {
				return err
			}
		}
		return nil
	case KindUnion:
		// Variants are stored sorted by discriminant at construction time,
		// which is the canonical tie-break.
		e.w.U8(cUnion)
		e.w.U16(uint16(len(def.variants)))
		for _, v := range def.variants {
			e.w.U8(v.Discriminant)
			e.w.U8(uint8(len(v.Name)))
			e.w.Raw([]byte(v.Name))
			if err := e.encodeRef(v.Type); err != nil {
				return err
			}
		}
		return nil
	}
	return issuef("/", CodeUnresolvableReference, nil)
}
