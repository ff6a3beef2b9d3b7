package sten

import (
	"strconv"
	"strings"
)

// DataPath locates a position inside a strict-encoded value: a sequence of
// steps through struct fields, tuple or list indices, map entries and union
// variants. Verification issues carry the path to the offending position.
type DataPath []DataStep

type stepKind uint8

const (
	stepField stepKind = iota + 1
	stepIndex
	stepKey
	stepValue
	stepVariant
)

// DataStep is one hop of a DataPath.
type DataStep struct {
	kind  stepKind
	name  string
	index int
}

// FieldStep addresses a struct field by name.
func FieldStep(name string) DataStep { return DataStep{kind: stepField, name: name} }

// IndexStep addresses a tuple member or list/set element by position.
func IndexStep(i int) DataStep { return DataStep{kind: stepIndex, index: i} }

// KeyStep addresses the key of the i-th map entry.
func KeyStep(i int) DataStep { return DataStep{kind: stepKey, index: i} }

// ValueStep addresses the value of the i-th map entry.
func ValueStep(i int) DataStep { return DataStep{kind: stepValue, index: i} }

// VariantStep addresses a union variant payload by variant name.
func VariantStep(name string) DataStep { return DataStep{kind: stepVariant, name: name} }

func (s DataStep) String() string {
	switch s.kind {
	case stepField, stepVariant:
		return s.name
	case stepIndex:
		return strconv.Itoa(s.index)
	case stepKey:
		return "key[" + strconv.Itoa(s.index) + "]"
	case stepValue:
		return "val[" + strconv.Itoa(s.index) + "]"
	}
	return "?"
}

// String renders the path as a slash-separated pointer; the empty path is "/".
func (p DataPath) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// push returns p extended by one step; the original is not modified.
func (p DataPath) push(s DataStep) DataPath {
	out := make(DataPath, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}
