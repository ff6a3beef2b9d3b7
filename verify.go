package sten

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/strictenc/sten/codec"
)

// Verify walks a strict-encoded value in r and checks that it is a
// well-formed encoding of the shape behind ref: fixed-width primitives have
// their bytes present, strings are valid UTF-8 (7-bit ASCII for the ascii
// kind) within bounds, collections
// honor their declared bounds, optionals carry a 0/1 presence byte, union
// discriminants are declared, and set elements and map keys appear in
// strictly ascending order of their encoded bytes (the canonical value
// order). It returns nil when the value is well-formed and Issues locating
// the first malformation otherwise.
//
// Verify needs a seekable stream so that already-consumed set elements and
// map keys can be re-read for the ordering check.
func (s *Schema) Verify(ref Ref, r io.ReadSeeker) error {
	v := &verifier{schema: s, r: codec.NewReader(r)}
	return v.verifyRef(ref, nil)
}

type verifier struct {
	schema *Schema
	r      *codec.Reader
}

func (v *verifier) verifyRef(ref Ref, path DataPath) error {
	def, err := v.schema.Resolve(ref)
	if err != nil {
		// A named ref missing from the schema is an unknown type, reported
		// at the data position that needed it; only a nil inline ref is an
		// internal-consistency failure.
		if ref.IsNamed() {
			return issuef(path.String(), CodeUnknownType, map[string]any{"name": ref.name})
		}
		return issuef(path.String(), CodeUnresolvableReference, nil)
	}
	return v.verifyDef(def, path)
}

func (v *verifier) verifyDef(def TypeDef, path DataPath) error {
	switch def.kind {
	case KindPrimitive:
		return v.verifyPrim(def.prim, path)

	case KindOptional:
		flag, err := v.r.U8()
		if err != nil {
			return v.readErr(err, path)
		}
		switch flag {
		case 0:
			return nil
		case 1:
			return v.verifyRef(def.inner, path)
		}
		return issuef(path.String(), CodeMalformedValue, map[string]any{"flag": flag})

	case KindList:
		n, err := v.count(def.bounds, path)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := v.verifyRef(def.inner, path.push(IndexStep(i))); err != nil {
				return err
			}
		}
		return nil

	case KindSet:
		n, err := v.count(def.bounds, path)
		if err != nil {
			return err
		}
		var prev []byte
		for i := 0; i < n; i++ {
			elem, err := v.capture(def.inner, path.push(IndexStep(i)))
			if err != nil {
				return err
			}
			if prev != nil && bytes.Compare(elem, prev) <= 0 {
				return issuef(path.push(IndexStep(i)).String(), CodeOutOfOrderKey, nil)
			}
			prev = elem
		}
		return nil

	case KindMap:
		n, err := v.count(def.bounds, path)
		if err != nil {
			return err
		}
		var prev []byte
		for i := 0; i < n; i++ {
			key, err := v.capture(def.key, path.push(KeyStep(i)))
			if err != nil {
				return err
			}
			if prev != nil && bytes.Compare(key, prev) <= 0 {
				return issuef(path.push(KeyStep(i)).String(), CodeOutOfOrderKey, nil)
			}
			prev = key
			if err := v.verifyRef(def.val, path.push(ValueStep(i))); err != nil {
				return err
			}
		}
		return nil

	case KindTuple:
		for i, r := range def.items {
			if err := v.verifyRef(r, path.push(IndexStep(i))); err != nil {
				return err
			}
		}
		return nil

	case KindStruct:
		for _, f := range def.fields {
			if err := v.verifyRef(f.Type, path.push(FieldStep(f.Name))); err != nil {
				return err
			}
		}
		return nil

	case KindUnion:
		disc, err := v.r.U8()
		if err != nil {
			return v.readErr(err, path)
		}
		for _, variant := range def.variants {
			if variant.Discriminant == disc {
				return v.verifyRef(variant.Type, path.push(VariantStep(variant.Name)))
			}
		}
		return issuef(path.String(), CodeUndeclaredDiscriminant, map[string]any{"discriminant": disc})
	}
	return issuef(path.String(), CodeUnresolvableReference, nil)
}

func (v *verifier) verifyPrim(p Primitive, path DataPath) error {
	if w, ok := p.kind.FixedWidth(); ok {
		if p.kind == Bool {
			b, err := v.r.U8()
			if err != nil {
				return v.readErr(err, path)
			}
			if b > 1 {
				return issuef(path.String(), CodeMalformedValue, map[string]any{"flag": b})
			}
			return nil
		}
		if err := v.r.Skip(int64(w)); err != nil {
			return v.readErr(err, path)
		}
		return nil
	}
	switch p.kind {
	case Bytes:
		if err := v.r.Skip(int64(p.size)); err != nil {
			return v.readErr(err, path)
		}
		return nil
	case Str, Ascii:
		n, err := v.r.U16()
		if err != nil {
			return v.readErr(err, path)
		}
		if !p.bounds.admits(int(n)) {
			return issuef(path.String(), CodeBoundViolation, map[string]any{"len": n, "min": p.bounds.Min, "max": p.bounds.Max})
		}
		b, err := v.r.Exact(int(n))
		if err != nil {
			return v.readErr(err, path)
		}
		if p.kind == Ascii {
			for _, c := range b {
				if c > 0x7F {
					return issuef(path.String(), CodeMalformedValue, map[string]any{"reason": "non-ascii byte"})
				}
			}
			return nil
		}
		if !utf8.Valid(b) {
			return issuef(path.String(), CodeMalformedValue, map[string]any{"reason": "invalid utf-8"})
		}
		return nil
	}
	return issuef(path.String(), CodeMalformedValue, map[string]any{"kind": p.kind.String()})
}

// count reads a u16 length prefix and checks it against the bounds.
func (v *verifier) count(bounds Sizing, path DataPath) (int, error) {
	n, err := v.r.U16()
	if err != nil {
		return 0, v.readErr(err, path)
	}
	if !bounds.admits(int(n)) {
		return 0, issuef(path.String(), CodeBoundViolation, map[string]any{"len": n, "min": bounds.Min, "max": bounds.Max})
	}
	return int(n), nil
}

// capture verifies one element and returns its encoded bytes, re-read from
// the stream, for the lexicographic ordering check.
func (v *verifier) capture(ref Ref, path DataPath) ([]byte, error) {
	from, err := v.r.Pos()
	if err != nil {
		return nil, v.readErr(err, path)
	}
	if err := v.verifyRef(ref, path); err != nil {
		return nil, err
	}
	to, err := v.r.Pos()
	if err != nil {
		return nil, v.readErr(err, path)
	}
	b, err := v.r.Between(from, to)
	if err != nil {
		return nil, v.readErr(err, path)
	}
	return b, nil
}

func (v *verifier) readErr(err error, path DataPath) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return issuef(path.String(), CodeTruncatedValue, nil)
	}
	iss := issuef(path.String(), CodeMalformedValue, nil)
	iss[0].Cause = err
	return iss
}
