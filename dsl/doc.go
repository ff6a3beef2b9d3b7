// Package dsl provides a fluent construction layer over the sten type
// algebra, intended for static schema definitions:
//
//	sc := sten.NewSchema()
//	sc.MustDefine("Point", dsl.Struct().
//		Field("x", dsl.U32()).
//		Field("y", dsl.U32()).
//		MustBuild())
//
// Helpers that can only fail on programmer error (invalid bounds written in
// source) panic with the underlying issue; builders accumulate issues and
// report them from Build, with MustBuild as the panicking variant.
package dsl
