// Package schema defines the type descriptors a document is generated from.
//
// A Descriptor identifies one distinct type occurrence: a primitive, a named
// record or enumeration, a container, a union, or a field slot wrapping an
// inner type plus its documentation metadata. Descriptors are pointers and
// compare by identity — every mention of the same record must share the same
// *Record so it resolves to a single section.
package schema

// Kind identifies the category of a type descriptor.
type Kind int

const (
	KindPrimitive Kind = iota
	KindEnum
	KindRecord
	KindList
	KindSet
	KindMap
	KindUnion
	KindTuple
	KindLiteral
	KindField
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindTuple:
		return "tuple"
	case KindLiteral:
		return "literal"
	case KindField:
		return "field"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Descriptor is one node value in the type graph. String returns a shape
// description used in error messages, not the rendered reference text.
type Descriptor interface {
	Kind() Kind
	String() string
}

// Primitive is a leaf type with a fixed display name.
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() Kind     { return KindPrimitive }
func (p *Primitive) String() string { return p.Name }

// Built-in primitives. These are singletons: using the package variables
// keeps descriptor identity intact across every mention.
var (
	String   = &Primitive{Name: "String"}
	Int      = &Primitive{Name: "Integer"}
	Float    = &Primitive{Name: "Floating Point Number"}
	Bool     = &Primitive{Name: "Boolean"}
	Null     = &Primitive{Name: "None/Null"}
	Path     = &Primitive{Name: "File Path"}
	Datetime = &Primitive{Name: "ISO8601 Datetime"}
	Duration = &Primitive{Name: "ISO8601 Duration"}
	URL      = &Primitive{Name: "URL"}
)

// Enum is a named enumeration. Values may be strings or numbers.
type Enum struct {
	Name   string
	Doc    string
	Values []any
}

func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) String() string { return "enum " + e.Name }

// Record is a named type with documented fields.
type Record struct {
	Name   string
	Doc    string
	Fields []*Field
}

func (r *Record) Kind() Kind     { return KindRecord }
func (r *Record) String() string { return "record " + r.Name }

// Field is a field slot: the inner type plus per-field documentation
// metadata. A nil Type means the schema author omitted it; the field renders
// as "unknown" with a warning. Annotations may carry an Override.
type Field struct {
	Name        string
	Doc         string
	Type        Descriptor
	Required    bool
	Default     string
	Annotations []any
}

func (f *Field) Kind() Kind     { return KindField }
func (f *Field) String() string { return "field " + f.Name }

// List is an ordered collection of Elem.
type List struct {
	Elem Descriptor
}

func (l *List) Kind() Kind     { return KindList }
func (l *List) String() string { return "list of " + describe(l.Elem) }

// Set is an unordered collection of Elem.
type Set struct {
	Elem Descriptor
}

func (s *Set) Kind() Kind     { return KindSet }
func (s *Set) String() string { return "set of " + describe(s.Elem) }

// Map is a key-value mapping.
type Map struct {
	Key   Descriptor
	Value Descriptor
}

func (m *Map) Kind() Kind { return KindMap }
func (m *Map) String() string {
	return "map of " + describe(m.Key) + " to " + describe(m.Value)
}

// Union is a choice between member types.
type Union struct {
	Members []Descriptor
}

func (u *Union) Kind() Kind     { return KindUnion }
func (u *Union) String() string { return "union" }

// Tuple is a fixed-length sequence of element types.
type Tuple struct {
	Elems []Descriptor
}

func (t *Tuple) Kind() Kind     { return KindTuple }
func (t *Tuple) String() string { return "tuple" }

// Literal is a choice between constant values. Constants are not traversable
// types, so a literal has no children in the graph.
type Literal struct {
	Values []any
}

func (l *Literal) Kind() Kind     { return KindLiteral }
func (l *Literal) String() string { return "literal" }

func describe(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	return d.String()
}
