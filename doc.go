// Package sten implements the type algebra and canonical-schema engine of the
// strict encoding format: a deterministic, canonical binary representation of
// structured data for consensus-sensitive exchange.
//
// It provides:
//
//   - A closed set of primitive and composite type constructors (TypeDef)
//   - A registry of named, possibly mutually recursive types (Schema)
//   - Canonical serialization of type definitions (Canonical)
//   - Content-addressed type identities over canonical forms (TypeID)
//   - Structural compatibility classification between types (Compare)
//   - Shape verification of strict-encoded values against a type (Verify)
//
// Design policy:
//   - Keep only public APIs in the root package.
//   - Place the construction DSL under dsl/, wire-level value helpers under
//     codec/, schema-document interchange under schemadoc/, and the CLI under
//     cmd/sten.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sc := sten.NewSchema()
//	sc.MustDefine("Point", dsl.Struct().
//		Field("x", dsl.U32()).
//		Field("y", dsl.U32()).
//		MustBuild())
//	if err := sc.Seal(); err != nil { ... }
//	id, err := sc.Identify(sten.Name("Point"))
package sten
