package sten

import "github.com/strictenc/sten/codec"

// Sizing bounds the number of elements in a collection (or bytes in a
// string). Bounds are inclusive; the format-wide cap is
// codec.MaxCollectionLen since every collection carries a u16 length prefix.
type Sizing struct {
	Min uint16
	Max uint16
}

// SizingDefault returns the unconstrained bounds [0, MaxCollectionLen].
func SizingDefault() Sizing { return Sizing{Min: 0, Max: codec.MaxCollectionLen} }

// FixedSizing returns bounds admitting exactly n elements.
func FixedSizing(n uint16) Sizing { return Sizing{Min: n, Max: n} }

// SizingBetween returns bounds [min, max]; satisfiability is checked at
// constructor time, not here.
func SizingBetween(min, max uint16) Sizing { return Sizing{Min: min, Max: max} }

// valid reports whether the bounds admit at least one length.
func (s Sizing) valid() bool { return s.Min <= s.Max }

// admits reports whether n satisfies the bounds.
func (s Sizing) admits(n int) bool { return n >= int(s.Min) && n <= int(s.Max) }

// contains reports whether s admits every length that o admits, i.e. s is a
// superset interval of o.
func (s Sizing) contains(o Sizing) bool { return s.Min <= o.Min && s.Max >= o.Max }
