package dsl

import (
	"github.com/strictenc/sten"
)

// SizeOpt adjusts collection bounds. The default is [0, codec.MaxCollectionLen].
type SizeOpt func(*sten.Sizing)

// Min sets the lower bound.
func Min(n uint16) SizeOpt { return func(s *sten.Sizing) { s.Min = n } }

// Max sets the upper bound.
func Max(n uint16) SizeOpt { return func(s *sten.Sizing) { s.Max = n } }

// Exactly fixes the size to n.
func Exactly(n uint16) SizeOpt {
	return func(s *sten.Sizing) { s.Min, s.Max = n, n }
}

func sizing(opts []SizeOpt) sten.Sizing {
	s := sten.SizingDefault()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Named returns a reference to a registered type name, resolved lazily; the
// name may be defined later, which is how mutually recursive schemas are
// written.
func Named(name string) sten.Ref { return sten.Name(name) }

// Optional wraps a type so its values may be absent.
func Optional(inner sten.Ref) sten.Ref {
	def, err := sten.Optional(inner)
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}

// List returns an ordered sequence type with the given bounds.
func List(elem sten.Ref, opts ...SizeOpt) sten.Ref {
	def, err := sten.ListOf(elem, sizing(opts))
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}

// Set returns a unique-element collection type with the given bounds.
func Set(elem sten.Ref, opts ...SizeOpt) sten.Ref {
	def, err := sten.SetOf(elem, sizing(opts))
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}

// Map returns a unique-key mapping type with the given bounds.
func Map(key, val sten.Ref, opts ...SizeOpt) sten.Ref {
	def, err := sten.MapOf(key, val, sizing(opts))
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}

// Tuple returns a fixed ordered sequence of member types.
func Tuple(items ...sten.Ref) sten.Ref {
	def, err := sten.TupleOf(items...)
	if err != nil {
		panic(err)
	}
	return sten.Inline(def)
}
