package sten

import "bytes"

// Relation classifies how two type definitions relate structurally.
type Relation int

const (
	// Incompatible: values of one shape are not structurally encodable
	// under the other.
	Incompatible Relation = iota
	// Identical: equal canonical forms, hence equal TypeIDs.
	Identical
	// Extends: the right-hand type is a compatible extension of the
	// left-hand type; every value encodable under the left shape remains
	// structurally encodable under the right shape.
	Extends
	// ExtendedBy: the left-hand type is a compatible extension of the
	// right-hand type.
	ExtendedBy
)

func (r Relation) String() string {
	switch r {
	case Identical:
		return "identical"
	case Extends:
		return "extends"
	case ExtendedBy:
		return "extended-by"
	}
	return "incompatible"
}

// Compare classifies the relation between the definitions behind a and b,
// possibly registered in two different schemas.
//
// The rules are strict: primitives match only at identical kind and
// parameters (no implicit widening); optionality is part of identity; bound
// relaxation on List/Set/Map yields Extends only when element, key and
// value types are Identical; Struct fields may only grow by new trailing
// fields with shared positions identical in name and type; Union variants
// may only grow by new discriminants with shared discriminants identical in
// name and type. Any constructor-kind mismatch is Incompatible.
func Compare(sa *Schema, a Ref, sb *Schema, b Ref) (Relation, error) {
	ca, err := sa.Canonical(a)
	if err != nil {
		return Incompatible, err
	}
	cb, err := sb.Canonical(b)
	if err != nil {
		return Incompatible, err
	}
	// TypeID equality implies Identical and short-circuits the walk.
	if bytes.Equal(ca, cb) {
		return Identical, nil
	}

	da, err := sa.Resolve(a)
	if err != nil {
		return Incompatible, err
	}
	db, err := sb.Resolve(b)
	if err != nil {
		return Incompatible, err
	}
	if da.kind != db.kind {
		return Incompatible, nil
	}

	identical := func(ra, rb Ref) (bool, error) {
		fa, err := sa.Canonical(ra)
		if err != nil {
			return false, err
		}
		fb, err := sb.Canonical(rb)
		if err != nil {
			return false, err
		}
		return bytes.Equal(fa, fb), nil
	}

	switch da.kind {
	case KindList, KindSet:
		same, err := identical(da.inner, db.inner)
		if err != nil || !same {
			return Incompatible, err
		}
		return boundsRelation(da.bounds, db.bounds), nil

	case KindMap:
		sameKey, err := identical(da.key, db.key)
		if err != nil || !sameKey {
			return Incompatible, err
		}
		sameVal, err := identical(da.val, db.val)
		if err != nil || !sameVal {
			return Incompatible, err
		}
		return boundsRelation(da.bounds, db.bounds), nil

	case KindStruct:
		if len(da.fields) < len(db.fields) {
			ok, err := fieldPrefix(sa, da.fields, sb, db.fields)
			if err != nil || !ok {
				return Incompatible, err
			}
			return Extends, nil
		}
		if len(db.fields) < len(da.fields) {
			ok, err := fieldPrefix(sb, db.fields, sa, da.fields)
			if err != nil || !ok {
				return Incompatible, err
			}
			return ExtendedBy, nil
		}
		return Incompatible, nil

	case KindUnion:
		aInB, err := variantSubset(sa, da.variants, sb, db.variants)
		if err != nil {
			return Incompatible, err
		}
		if aInB && len(db.variants) > len(da.variants) {
			return Extends, nil
		}
		bInA, err := variantSubset(sb, db.variants, sa, da.variants)
		if err != nil {
			return Incompatible, err
		}
		if bInA && len(da.variants) > len(db.variants) {
			return ExtendedBy, nil
		}
		return Incompatible, nil
	}

	// Primitive, Optional and Tuple admit no relaxation: anything short of
	// canonical equality is incompatible.
	return Incompatible, nil
}

// CompareIn is Compare within a single schema.
func (s *Schema) CompareIn(a, b Ref) (Relation, error) {
	return Compare(s, a, s, b)
}

// boundsRelation classifies two bound intervals with identical inner types:
// a superset interval extends the subset one.
func boundsRelation(a, b Sizing) Relation {
	switch {
	case a == b:
		return Identical
	case b.contains(a):
		return Extends
	case a.contains(b):
		return ExtendedBy
	}
	return Incompatible
}

// fieldPrefix reports whether short is a prefix of long with identical names
// and types at each shared position.
func fieldPrefix(ss *Schema, short []Field, sl *Schema, long []Field) (bool, error) {
	for i, f := range short {
		if f.Name != long[i].Name {
			return false, nil
		}
		fa, err := ss.Canonical(f.Type)
		if err != nil {
			return false, err
		}
		fb, err := sl.Canonical(long[i].Type)
		if err != nil {
			return false, err
		}
		if !bytes.Equal(fa, fb) {
			return false, nil
		}
	}
	return true, nil
}

// variantSubset reports whether every discriminant of sub exists in super
// with identical variant name and type.
func variantSubset(ss *Schema, sub []Variant, sl *Schema, super []Variant) (bool, error) {
	byDisc := make(map[uint8]Variant, len(super))
	for _, v := range super {
		byDisc[v.Discriminant] = v
	}
	for _, v := range sub {
		o, ok := byDisc[v.Discriminant]
		if !ok || o.Name != v.Name {
			return false, nil
		}
		fa, err := ss.Canonical(v.Type)
		if err != nil {
			return false, err
		}
		fb, err := sl.Canonical(o.Type)
		if err != nil {
			return false, err
		}
		if !bytes.Equal(fa, fb) {
			return false, nil
		}
	}
	return true, nil
}

// CompareSchemas aggregates pairwise relations over two full schemas. A name
// present in only one schema contributes Extends or ExtendedBy (additive
// types are compatible growth); shared names contribute their pairwise
// relation; mixed growth directions or any incompatible pair collapse to
// Incompatible.
func CompareSchemas(sa, sb *Schema) (Relation, error) {
	agg := Identical
	merge := func(r Relation) {
		switch {
		case r == Identical:
		case agg == Identical:
			agg = r
		case agg != r:
			agg = Incompatible
		}
	}
	for _, name := range sa.Types() {
		if _, ok := sb.TypeOf(name); !ok {
			merge(ExtendedBy)
			continue
		}
		r, err := Compare(sa, Name(name), sb, Name(name))
		if err != nil {
			return Incompatible, err
		}
		merge(r)
		if agg == Incompatible {
			return Incompatible, nil
		}
	}
	for _, name := range sb.Types() {
		if _, ok := sa.TypeOf(name); !ok {
			merge(Extends)
			if agg == Incompatible {
				return Incompatible, nil
			}
		}
	}
	return agg, nil
}
