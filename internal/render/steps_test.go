package render

import (
	"errors"
	"testing"

	"github.com/dgallion1/typedoc/internal/diag"
	"github.com/dgallion1/typedoc/internal/schema"
)

func reference(t *testing.T, d schema.Descriptor, refs schema.References) string {
	t.Helper()
	step, err := NewDispatcher(diag.Discard).Step(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, err := step.Reference(refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ref
}

func TestReferenceTexts(t *testing.T) {
	refs := schema.References{
		schema.String: "String",
		schema.Int:    "Integer",
	}

	cases := []struct {
		name string
		desc schema.Descriptor
		want string
	}{
		{"primitive", schema.String, "String"},
		{"list", &schema.List{Elem: schema.String}, "List of String"},
		{"set", &schema.Set{Elem: schema.Int}, "Set of Integer"},
		{"map", &schema.Map{Key: schema.String, Value: schema.Int}, "Mapping of String to Integer"},
		{"union", &schema.Union{Members: []schema.Descriptor{schema.String, schema.Int}}, "String or Integer"},
		{"tuple", &schema.Tuple{Elems: []schema.Descriptor{schema.String, schema.Int}}, "Tuple of String and Integer"},
		{"literal", &schema.Literal{Values: []any{"fast", 3}}, `Either "fast" or 3`},
		{"enum", &schema.Enum{Name: "Mode", Doc: "d", Values: []any{"a"}}, "[Mode](#Mode)"},
		{"record", &schema.Record{Name: "Config", Doc: "d"}, "[Config](#Config)"},
	}
	for _, tc := range cases {
		if got := reference(t, tc.desc, refs); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestIncompleteContainerReferences(t *testing.T) {
	refs := schema.References{}
	if got := reference(t, &schema.List{}, refs); got != "List" {
		t.Errorf("expected bare List, got %q", got)
	}
	if got := reference(t, &schema.Set{}, refs); got != "Set" {
		t.Errorf("expected bare Set, got %q", got)
	}
	if got := reference(t, &schema.Map{}, refs); got != "Mapping" {
		t.Errorf("expected bare Mapping, got %q", got)
	}
}

func TestFieldReferenceDelegatesToInnerType(t *testing.T) {
	refs := schema.References{schema.String: "String"}
	field := &schema.Field{Name: "host", Doc: "d", Type: schema.String}
	if got := reference(t, field, refs); got != "String" {
		t.Errorf("expected the inner type's reference, got %q", got)
	}
}

func TestFieldWithoutTypeRendersUnknown(t *testing.T) {
	field := &schema.Field{Name: "mystery", Doc: "d"}
	if got := reference(t, field, schema.References{}); got != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", got)
	}
}

func TestCompoundReferencePropagatesMissing(t *testing.T) {
	step, err := NewDispatcher(diag.Discard).Step(&schema.List{Elem: schema.String})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = step.Reference(schema.References{})
	var missing *schema.MissingReferenceError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingReferenceError, got %v", err)
	}
	if missing.Descriptor != schema.String {
		t.Errorf("expected the element descriptor in the error")
	}
}
