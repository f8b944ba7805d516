// Package doctree builds the dependency tree of descriptors reachable from a
// root type. Traversal follows every occurrence, so the same descriptor may
// appear under several parents; the resolution engine deduplicates work by
// descriptor identity, not by node.
package doctree

import (
	"fmt"

	"github.com/dgallion1/typedoc/internal/schema"
)

// Node is one descriptor occurrence in the tree.
type Node struct {
	Desc     schema.Descriptor
	Parent   *Node
	Children []*Node
}

// RecursiveTypeError reports a descriptor that repeats along its own
// ancestor chain. Recursive and mutually recursive types are rejected
// outright rather than resolved.
type RecursiveTypeError struct {
	Descriptor schema.Descriptor
}

func (e *RecursiveTypeError) Error() string {
	return fmt.Sprintf("recursive type %q is not supported", e.Descriptor)
}

// Build expands root into a tree of every statically reachable descriptor.
// Children follow the descriptor kind: a record yields its field slots, a
// field slot its inner type, containers and unions their type arguments.
// Leaves (primitives, enums, literals, customs) have no children.
func Build(root schema.Descriptor) (*Node, error) {
	n := &Node{Desc: root}
	if err := expand(n); err != nil {
		return nil, err
	}
	return n, nil
}

func expand(n *Node) error {
	kids, err := children(n.Desc)
	if err != nil {
		return err
	}
	for _, kid := range kids {
		if kid == nil {
			// Field without a type annotation; the handler renders a
			// placeholder and warns.
			continue
		}
		for a := n; a != nil; a = a.Parent {
			if a.Desc == kid {
				return &RecursiveTypeError{Descriptor: kid}
			}
		}
		child := &Node{Desc: kid, Parent: n}
		n.Children = append(n.Children, child)
		if err := expand(child); err != nil {
			return err
		}
	}
	return nil
}

func children(d schema.Descriptor) ([]schema.Descriptor, error) {
	switch t := d.(type) {
	case *schema.Primitive, *schema.Enum, *schema.Literal, *schema.Custom:
		return nil, nil
	case *schema.Record:
		kids := make([]schema.Descriptor, len(t.Fields))
		for i, f := range t.Fields {
			kids[i] = f
		}
		return kids, nil
	case *schema.Field:
		return []schema.Descriptor{t.Type}, nil
	case *schema.List:
		return []schema.Descriptor{t.Elem}, nil
	case *schema.Set:
		return []schema.Descriptor{t.Elem}, nil
	case *schema.Map:
		return []schema.Descriptor{t.Key, t.Value}, nil
	case *schema.Union:
		return append([]schema.Descriptor(nil), t.Members...), nil
	case *schema.Tuple:
		return append([]schema.Descriptor(nil), t.Elems...), nil
	default:
		return nil, &schema.UnsupportedTypeError{Descriptor: d}
	}
}

// Attach adds a pending-dependency placeholder for d under n. The placeholder
// is a bare leaf: whatever d itself depends on is discovered one missing
// reference at a time by the resolution engine.
func (n *Node) Attach(d schema.Descriptor) *Node {
	child := &Node{Desc: d, Parent: n}
	n.Children = append(n.Children, child)
	return child
}

// PostOrder returns the nodes with children before their parents. The slice
// is a snapshot; growing the tree afterwards does not affect it.
func (n *Node) PostOrder() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			walk(c)
		}
		out = append(out, cur)
	}
	walk(n)
	return out
}

// PreOrder returns the nodes with parents before their children, matching
// first-use order in the emitted document.
func (n *Node) PreOrder() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur)
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
