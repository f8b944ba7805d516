// Package render turns a descriptor graph into an ordered document. The
// Dispatcher picks the Step that renders each descriptor; the Engine drives
// reference resolution and section emission over the whole graph.
package render

import (
	"fmt"

	"github.com/dgallion1/typedoc/internal/diag"
	"github.com/dgallion1/typedoc/internal/emit"
	"github.com/dgallion1/typedoc/internal/schema"
)

// Step renders one descriptor: a short reference string, plus the full
// section body. Steps read the reference table but never write it; container
// steps have no section of their own and leave Body a no-op.
type Step interface {
	Reference(refs schema.References) (string, error)
	Body(refs schema.References, w emit.Writer) error
}

// ConfigurationError reports a descriptor whose annotations cannot be
// rendered, such as a field carrying more than one override.
type ConfigurationError struct {
	Name   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

type entry struct {
	match func(schema.Descriptor) bool
	build func(schema.Descriptor) (Step, error)
}

// Dispatcher maps descriptors to Steps through an ordered predicate list;
// the first match wins. The per-instance override entry sits ahead of every
// built-in kind, so a Custom descriptor always beats the default rendering.
//
// Step construction is also where documentation-quality warnings are raised:
// a record or enum without documentation, or a field without a description,
// warns once to the diagnostics sink and still constructs with placeholder
// output.
type Dispatcher struct {
	diag    diag.Sink
	entries []entry
}

func NewDispatcher(sink diag.Sink) *Dispatcher {
	if sink == nil {
		sink = diag.Discard
	}
	d := &Dispatcher{diag: sink}
	d.entries = []entry{
		{matchOverride, d.buildOverride},
		{matchKind(schema.KindPrimitive), d.buildPrimitive},
		{matchKind(schema.KindEnum), d.buildEnum},
		{matchKind(schema.KindRecord), d.buildRecord},
		{matchKind(schema.KindList), d.buildList},
		{matchKind(schema.KindSet), d.buildSet},
		{matchKind(schema.KindMap), d.buildMap},
		{matchKind(schema.KindUnion), d.buildUnion},
		{matchKind(schema.KindTuple), d.buildTuple},
		{matchKind(schema.KindLiteral), d.buildLiteral},
		{matchKind(schema.KindField), d.buildField},
	}
	return d
}

// Step returns the Step covering d, or an UnsupportedTypeError when no
// predicate matches.
func (d *Dispatcher) Step(desc schema.Descriptor) (Step, error) {
	for _, e := range d.entries {
		if e.match(desc) {
			return e.build(desc)
		}
	}
	return nil, &schema.UnsupportedTypeError{Descriptor: desc}
}

func matchKind(k schema.Kind) func(schema.Descriptor) bool {
	return func(desc schema.Descriptor) bool {
		return desc != nil && desc.Kind() == k
	}
}

// matchOverride covers Custom descriptors and any descriptor that itself
// implements Override.
func matchOverride(desc schema.Descriptor) bool {
	if _, ok := desc.(*schema.Custom); ok {
		return true
	}
	_, ok := desc.(schema.Override)
	return ok
}

func (d *Dispatcher) buildOverride(desc schema.Descriptor) (Step, error) {
	if c, ok := desc.(*schema.Custom); ok {
		if c.Impl == nil {
			return nil, &ConfigurationError{Name: c.Name, Reason: "custom descriptor without an override"}
		}
		return &overrideStep{ov: c.Impl}, nil
	}
	return &overrideStep{ov: desc.(schema.Override)}, nil
}

func (d *Dispatcher) buildPrimitive(desc schema.Descriptor) (Step, error) {
	return &primitiveStep{p: desc.(*schema.Primitive)}, nil
}

func (d *Dispatcher) buildEnum(desc schema.Descriptor) (Step, error) {
	e := desc.(*schema.Enum)
	if e.Doc == "" {
		d.diag.Warn(diag.MissingDoc, fmt.Sprintf("enumeration %q is missing documentation", e.Name))
	}
	return &enumStep{e: e}, nil
}

func (d *Dispatcher) buildRecord(desc schema.Descriptor) (Step, error) {
	r := desc.(*schema.Record)
	if r.Doc == "" {
		d.diag.Warn(diag.MissingDoc, fmt.Sprintf("record %q is missing documentation", r.Name))
	}
	return &recordStep{r: r}, nil
}

func (d *Dispatcher) buildList(desc schema.Descriptor) (Step, error) {
	l := desc.(*schema.List)
	if l.Elem == nil {
		d.diag.Warn(diag.IncompleteType, "list without an element type")
	}
	return &listStep{l: l}, nil
}

func (d *Dispatcher) buildSet(desc schema.Descriptor) (Step, error) {
	s := desc.(*schema.Set)
	if s.Elem == nil {
		d.diag.Warn(diag.IncompleteType, "set without an element type")
	}
	return &setStep{s: s}, nil
}

func (d *Dispatcher) buildMap(desc schema.Descriptor) (Step, error) {
	m := desc.(*schema.Map)
	if m.Key == nil || m.Value == nil {
		d.diag.Warn(diag.IncompleteType, "map without key and value types")
	}
	return &mapStep{m: m}, nil
}

func (d *Dispatcher) buildUnion(desc schema.Descriptor) (Step, error) {
	return &unionStep{u: desc.(*schema.Union)}, nil
}

func (d *Dispatcher) buildTuple(desc schema.Descriptor) (Step, error) {
	return &tupleStep{t: desc.(*schema.Tuple)}, nil
}

func (d *Dispatcher) buildLiteral(desc schema.Descriptor) (Step, error) {
	return &literalStep{l: desc.(*schema.Literal)}, nil
}

func (d *Dispatcher) buildField(desc schema.Descriptor) (Step, error) {
	f := desc.(*schema.Field)
	var override schema.Override
	for _, a := range f.Annotations {
		ov, ok := a.(schema.Override)
		if !ok {
			continue
		}
		if override != nil {
			return nil, &ConfigurationError{Name: f.Name, Reason: "multiple override annotations, only one is allowed"}
		}
		override = ov
	}
	if f.Doc == "" {
		d.diag.Warn(diag.MissingDescription, fmt.Sprintf("field %q does not have a description", f.Name))
	}
	if f.Type == nil && override == nil {
		d.diag.Warn(diag.IncompleteType, fmt.Sprintf("field %q does not have a type annotation", f.Name))
	}
	return &fieldStep{f: f, override: override}, nil
}
