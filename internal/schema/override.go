package schema

import "github.com/dgallion1/typedoc/internal/emit"

// Override replaces the built-in rendering for a descriptor. It supplies
// both the reference text and the section body; there is deliberately no
// reference-only or body-only form — implementing the interface means
// providing both.
//
// An Override may ask for references the engine has not computed yet. In
// that case it must return the *MissingReferenceError produced by
// References.Lookup, which makes the engine grow the graph and retry.
type Override interface {
	Reference(refs References) (string, error)
	Body(refs References, w emit.Writer) error
}

// Custom is a descriptor rendered entirely by an Override. It has no
// statically known children; whatever it references is discovered during
// resolution.
type Custom struct {
	Name string
	Impl Override
}

func (c *Custom) Kind() Kind     { return KindCustom }
func (c *Custom) String() string { return "custom " + c.Name }
