package sten

import (
	"sort"
	"sync"
)

// Schema is a registry of named type definitions: one versioned collection of
// related types. It supports mutually recursive definitions through named
// references resolved lazily.
//
// A Schema has two phases. While open, Define inserts types under a
// single-writer discipline. Seal closes the world: every reference must
// resolve inside the schema and every recursive cycle must be productive.
// A sealed Schema is immutable and safe for concurrent canonicalization,
// identification, comparison and verification.
type Schema struct {
	mu     sync.RWMutex
	types  map[string]TypeDef
	order  []string
	sealed bool
}

// NewSchema returns an empty, open schema.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]TypeDef)}
}

// Define inserts a named definition. Redefining a name with a structurally
// identical definition is a no-op; a different definition fails with
// duplicate_name. When every type reachable from name is already present,
// the recursion shape is checked immediately and a definition admitting no
// finite value fails with unbounded_recursion; otherwise the check is
// deferred to Seal.
func (s *Schema) Define(name string, def TypeDef) error {
	if !validName(name) {
		return issuef("/"+name, CodeInvalidName, map[string]any{"name": name})
	}
	if def.kind == 0 {
		return issuef("/"+name, CodeUnresolvableReference, nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return issuef("/"+name, CodeSchemaSealed, nil)
	}
	if prev, ok := s.types[name]; ok {
		if equalDef(prev, def) {
			return nil
		}
		return issuef("/"+name, CodeDuplicateName, map[string]any{"name": name})
	}
	s.types[name] = def
	s.order = append(s.order, name)

	// Eager recursion check, but only when the subgraph reachable from the
	// new name is fully defined; forward references defer to Seal.
	if closed, grounded := s.groundedLocked(name); closed && !grounded {
		delete(s.types, name)
		s.order = s.order[:len(s.order)-1]
		return issuef("/"+name, CodeUnboundedRecursion, map[string]any{"name": name})
	}
	return nil
}

// MustDefine is Define, panicking on error. Intended for static schema
// construction at program start.
func (s *Schema) MustDefine(name string, def TypeDef) {
	if err := s.Define(name, def); err != nil {
		panic(err)
	}
}

// Resolve returns the definition a reference points at, following at most
// one indirection. Unresolved names fail with unknown_type.
func (s *Schema) Resolve(ref Ref) (TypeDef, error) {
	if ref.IsNamed() {
		s.mu.RLock()
		def, ok := s.types[ref.name]
		s.mu.RUnlock()
		if !ok {
			return TypeDef{}, issuef("/"+ref.name, CodeUnknownType, map[string]any{"name": ref.name})
		}
		return def, nil
	}
	if ref.def == nil {
		return TypeDef{}, issuef("/", CodeUnresolvableReference, nil)
	}
	return *ref.def, nil
}

// Seal closes the schema. It verifies the closed-world invariant (every
// named reference inside any definition resolves within the schema) and
// that every recursive cycle is productive. After Seal succeeds the schema
// is read-only; sealing an already-sealed schema is a no-op.
func (s *Schema) Seal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return nil
	}
	var iss Issues
	for _, name := range s.order {
		for _, missing := range s.unresolvedLocked(s.types[name], nil) {
			iss = AppendIssues(iss, issuef("/"+name+"/"+missing, CodeUnknownType, map[string]any{"name": missing})[0])
		}
	}
	if len(iss) > 0 {
		return iss
	}
	grounded := s.groundedSetLocked()
	for _, name := range s.order {
		if !grounded[name] {
			iss = AppendIssues(iss, issuef("/"+name, CodeUnboundedRecursion, map[string]any{"name": name})[0])
		}
	}
	if len(iss) > 0 {
		return iss
	}
	s.sealed = true
	return nil
}

// Sealed reports whether the schema has been closed.
func (s *Schema) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}

// Types returns the defined names in lexicographic order.
func (s *Schema) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]string(nil), s.order...)
	sort.Strings(out)
	return out
}

// TypeOf returns the definition registered under name.
func (s *Schema) TypeOf(name string) (TypeDef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.types[name]
	return def, ok
}

// Len returns the number of defined types.
func (s *Schema) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.types)
}

// unresolvedLocked collects named references inside def that the schema does
// not define, descending through inline definitions.
func (s *Schema) unresolvedLocked(def TypeDef, acc []string) []string {
	for _, r := range def.refs() {
		if r.IsNamed() {
			if _, ok := s.types[r.name]; !ok {
				acc = append(acc, r.name)
			}
			continue
		}
		if r.def != nil {
			acc = s.unresolvedLocked(*r.def, acc)
		}
	}
	return acc
}

// groundedSetLocked computes, by fixpoint, which named types admit a value of
// finite size. A definition grounds if it is a primitive; if it is one of the
// variable-length constructors (Optional, List, Set, Map), which always admit
// an empty or absent value; if it is a Tuple or Struct whose members all
// ground; or if it is a Union with at least one grounding variant. Names left
// ungrounded at the fixpoint sit on non-productive cycles.
func (s *Schema) groundedSetLocked() map[string]bool {
	grounded := make(map[string]bool, len(s.types))
	for {
		changed := false
		for name, def := range s.types {
			if grounded[name] {
				continue
			}
			if s.defGroundedLocked(def, grounded) {
				grounded[name] = true
				changed = true
			}
		}
		if !changed {
			return grounded
		}
	}
}

func (s *Schema) defGroundedLocked(def TypeDef, grounded map[string]bool) bool {
	switch def.kind {
	case KindPrimitive, KindOptional, KindList, KindSet, KindMap:
		return true
	case KindTuple, KindStruct:
		for _, r := range def.refs() {
			if !s.refGroundedLocked(r, grounded) {
				return false
			}
		}
		return true
	case KindUnion:
		for _, v := range def.variants {
			if s.refGroundedLocked(v.Type, grounded) {
				return true
			}
		}
		return false
	}
	return false
}

func (s *Schema) refGroundedLocked(r Ref, grounded map[string]bool) bool {
	if r.IsNamed() {
		return grounded[r.name]
	}
	if r.def == nil {
		return false
	}
	return s.defGroundedLocked(*r.def, grounded)
}

// groundedLocked checks a single name: closed reports whether every type
// reachable from it is defined, grounded whether it admits a finite value.
// Only meaningful when closed is true.
func (s *Schema) groundedLocked(name string) (closed, grounded bool) {
	visited := map[string]bool{}
	stack := []string{name}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		def, ok := s.types[n]
		if !ok {
			return false, false
		}
		stack = append(stack, s.namedRefsLocked(def, nil)...)
	}
	return true, s.groundedSetLocked()[name]
}

func (s *Schema) namedRefsLocked(def TypeDef, acc []string) []string {
	for _, r := range def.refs() {
		if r.IsNamed() {
			acc = append(acc, r.name)
		} else if r.def != nil {
			acc = s.namedRefsLocked(*r.def, acc)
		}
	}
	return acc
}
