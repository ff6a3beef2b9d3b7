package sten

// Ref points at a type: either an inline definition or a reference to a name
// resolved through a Schema. Named references may point at types not yet
// defined, which is what makes mutually recursive definitions constructible;
// resolution happens lazily at canonicalization or verification time.
type Ref struct {
	name string
	def  *TypeDef
}

// Name returns a reference to the named type.
func Name(name string) Ref { return Ref{name: name} }

// Inline embeds a definition directly, without going through the registry.
func Inline(def TypeDef) Ref { return Ref{def: &def} }

// IsNamed reports whether the reference goes through the registry.
func (r Ref) IsNamed() bool { return r.name != "" }

// TypeName returns the referenced name, or "" for inline references.
func (r Ref) TypeName() string { return r.name }

// InlineDef returns the embedded definition of an inline reference.
func (r Ref) InlineDef() (TypeDef, bool) {
	if r.def == nil {
		return TypeDef{}, false
	}
	return *r.def, true
}

// isZero reports an unusable zero-value Ref.
func (r Ref) isZero() bool { return r.name == "" && r.def == nil }

func (r Ref) String() string {
	if r.IsNamed() {
		return r.name
	}
	if r.def != nil {
		return r.def.String()
	}
	return "<zero ref>"
}

// maxTypeNameLen bounds type, field and variant names: their canonical
// encoding uses a u8 length prefix.
const maxTypeNameLen = 0xFF

// validName reports whether s is a legal identifier: a letter or underscore
// followed by letters, digits or underscores, at most 255 bytes.
func validName(s string) bool {
	if len(s) == 0 || len(s) > maxTypeNameLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
