package sten

import (
	"github.com/opencontainers/go-digest"
)

// TypeID is the content-addressed identity of a type: a digest over its
// canonical form, stable across library versions as long as the
// canonicalization rules are unchanged. It is independent of the
// human-readable name a type is registered under; two types with equal
// TypeID are the same type for all external-interface purposes. The value
// is comparable and usable as a map key; treat it as opaque outside this
// package.
type TypeID string

// Identify computes the TypeID of the definition behind ref. Pure function;
// the only failure mode is a propagated canonicalization error.
func (s *Schema) Identify(ref Ref) (TypeID, error) {
	form, err := s.Canonical(ref)
	if err != nil {
		return "", err
	}
	return TypeID(digest.Canonical.FromBytes(form)), nil
}

// IdentifyName is Identify for a registered name.
func (s *Schema) IdentifyName(name string) (TypeID, error) {
	return s.Identify(Name(name))
}

// Digest returns the identifier as an opencontainers digest.
func (id TypeID) Digest() digest.Digest { return digest.Digest(id) }

// String renders the identifier in algorithm:hex form.
func (id TypeID) String() string { return string(id) }
