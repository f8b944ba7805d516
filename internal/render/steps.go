package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/typedoc/internal/emit"
	"github.com/dgallion1/typedoc/internal/schema"
)

type primitiveStep struct {
	p *schema.Primitive
}

func (s *primitiveStep) Reference(schema.References) (string, error) {
	return s.p.Name, nil
}

func (s *primitiveStep) Body(schema.References, emit.Writer) error {
	return nil
}

type enumStep struct {
	e *schema.Enum
}

func (s *enumStep) Reference(schema.References) (string, error) {
	return emit.HeaderReference(s.e.Name), nil
}

func (s *enumStep) Body(refs schema.References, w emit.Writer) error {
	if err := w.Header(s.e.Name, 0); err != nil {
		return err
	}
	if s.e.Doc != "" {
		if err := w.Description(s.e.Doc); err != nil {
			return err
		}
	}
	if err := w.Write("Possible values:\n"); err != nil {
		return err
	}
	for _, v := range s.e.Values {
		if err := w.Write("* " + formatConstant(v) + "\n"); err != nil {
			return err
		}
	}
	return w.Write("\n\n")
}

type recordStep struct {
	r *schema.Record
}

func (s *recordStep) Reference(schema.References) (string, error) {
	return emit.HeaderReference(s.r.Name), nil
}

func (s *recordStep) Body(refs schema.References, w emit.Writer) error {
	if err := w.Header(s.r.Name, 0); err != nil {
		return err
	}
	if s.r.Doc != "" {
		if err := w.Description(s.r.Doc); err != nil {
			return err
		}
	}
	rows := make([][]string, 0, len(s.r.Fields))
	for _, f := range s.r.Fields {
		// The type cell holds the field slot's own reference, so per-field
		// overrides show up here too.
		ref, err := refs.Lookup(f)
		if err != nil {
			return err
		}
		required := "No"
		if f.Required {
			required = "Yes"
		}
		rows = append(rows, []string{f.Name, ref, required, orBlank(f.Default), orBlank(f.Doc)})
	}
	return w.Table([]string{"Name", "Type", "Required", "Default", "Description"}, rows)
}

type listStep struct {
	l *schema.List
}

func (s *listStep) Reference(refs schema.References) (string, error) {
	if s.l.Elem == nil {
		return "List", nil
	}
	elem, err := refs.Lookup(s.l.Elem)
	if err != nil {
		return "", err
	}
	return "List of " + elem, nil
}

func (s *listStep) Body(schema.References, emit.Writer) error {
	return nil
}

type setStep struct {
	s *schema.Set
}

func (s *setStep) Reference(refs schema.References) (string, error) {
	if s.s.Elem == nil {
		return "Set", nil
	}
	elem, err := refs.Lookup(s.s.Elem)
	if err != nil {
		return "", err
	}
	return "Set of " + elem, nil
}

func (s *setStep) Body(schema.References, emit.Writer) error {
	return nil
}

type mapStep struct {
	m *schema.Map
}

func (s *mapStep) Reference(refs schema.References) (string, error) {
	if s.m.Key == nil || s.m.Value == nil {
		return "Mapping", nil
	}
	key, err := refs.Lookup(s.m.Key)
	if err != nil {
		return "", err
	}
	value, err := refs.Lookup(s.m.Value)
	if err != nil {
		return "", err
	}
	return "Mapping of " + key + " to " + value, nil
}

func (s *mapStep) Body(schema.References, emit.Writer) error {
	return nil
}

type unionStep struct {
	u *schema.Union
}

func (s *unionStep) Reference(refs schema.References) (string, error) {
	parts, err := lookupAll(refs, s.u.Members)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, " or "), nil
}

func (s *unionStep) Body(schema.References, emit.Writer) error {
	return nil
}

type tupleStep struct {
	t *schema.Tuple
}

func (s *tupleStep) Reference(refs schema.References) (string, error) {
	parts, err := lookupAll(refs, s.t.Elems)
	if err != nil {
		return "", err
	}
	return "Tuple of " + strings.Join(parts, " and "), nil
}

func (s *tupleStep) Body(schema.References, emit.Writer) error {
	return nil
}

type literalStep struct {
	l *schema.Literal
}

func (s *literalStep) Reference(schema.References) (string, error) {
	parts := make([]string, len(s.l.Values))
	for i, v := range s.l.Values {
		parts[i] = formatConstant(v)
	}
	return "Either " + strings.Join(parts, " or "), nil
}

func (s *literalStep) Body(schema.References, emit.Writer) error {
	return nil
}

// fieldStep renders a field slot. With an override annotation it delegates
// both reference and body to the override; otherwise the reference is the
// inner type's already-computed one and the body is empty, since the inner
// type prints its own section at its own node.
type fieldStep struct {
	f        *schema.Field
	override schema.Override
}

func (s *fieldStep) Reference(refs schema.References) (string, error) {
	if s.override != nil {
		return s.override.Reference(refs)
	}
	if s.f.Type == nil {
		return "unknown", nil
	}
	return refs.Lookup(s.f.Type)
}

func (s *fieldStep) Body(refs schema.References, w emit.Writer) error {
	if s.override != nil {
		return s.override.Body(refs, w)
	}
	return nil
}

type overrideStep struct {
	ov schema.Override
}

func (s *overrideStep) Reference(refs schema.References) (string, error) {
	return s.ov.Reference(refs)
}

func (s *overrideStep) Body(refs schema.References, w emit.Writer) error {
	return s.ov.Body(refs, w)
}

func lookupAll(refs schema.References, ds []schema.Descriptor) ([]string, error) {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		ref, err := refs.Lookup(d)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

// formatConstant quotes string constants and prints everything else plainly.
func formatConstant(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func orBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}
