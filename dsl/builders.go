package dsl

import (
	"github.com/strictenc/sten"
)

// structBuilder accumulates named fields in declared order. Field position is
// semantic in strict encoding, so the order of Field calls is the wire order.
type structBuilder struct {
	fields []sten.Field
}

// Struct creates a new struct builder.
func Struct() *structBuilder { return &structBuilder{} }

// Field appends a field.
func (b *structBuilder) Field(name string, ty sten.Ref) *structBuilder {
	b.fields = append(b.fields, sten.Field{Name: name, Type: ty})
	return b
}

// Build validates and returns the struct definition.
func (b *structBuilder) Build() (sten.TypeDef, error) {
	return sten.StructOf(b.fields...)
}

// MustBuild is Build, panicking on error.
func (b *structBuilder) MustBuild() sten.TypeDef {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

// Ref builds the struct and returns it as an inline reference.
func (b *structBuilder) Ref() sten.Ref { return sten.Inline(b.MustBuild()) }

// unionBuilder accumulates discriminated variants.
type unionBuilder struct {
	variants []sten.Variant
}

// Union creates a new union builder.
func Union() *unionBuilder { return &unionBuilder{} }

// Variant appends a variant under the given discriminant.
func (b *unionBuilder) Variant(disc uint8, name string, ty sten.Ref) *unionBuilder {
	b.variants = append(b.variants, sten.Variant{Discriminant: disc, Name: name, Type: ty})
	return b
}

// Build validates and returns the union definition.
func (b *unionBuilder) Build() (sten.TypeDef, error) {
	return sten.UnionOf(b.variants...)
}

// MustBuild is Build, panicking on error.
func (b *unionBuilder) MustBuild() sten.TypeDef {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

// Ref builds the union and returns it as an inline reference.
func (b *unionBuilder) Ref() sten.Ref { return sten.Inline(b.MustBuild()) }
