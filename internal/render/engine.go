package render

import (
	"errors"

	"github.com/dgallion1/typedoc/internal/doctree"
	"github.com/dgallion1/typedoc/internal/emit"
	"github.com/dgallion1/typedoc/internal/schema"
)

// Engine resolves one document. It first assigns every reachable descriptor
// a reference string (children before parents, so compound references like
// "List of X" find X already computed), then emits each descriptor's section
// exactly once in first-use order.
//
// A handler may ask for a reference the engine has not computed yet — for
// example through an override pointing at a type the static traversal never
// saw. The engine catches that as a discovery: the missing descriptor is
// attached under the node that demanded it, and both passes rerun from the
// start. Work already done is never repeated, because resolved descriptors
// skip the reference pass and printed descriptors skip the body pass. Every
// discovery adds a descriptor not present before, so the retry loop is
// bounded by the number of distinct descriptors.
//
// An Engine holds per-run state and renders a single document; it must not
// be reused or shared between goroutines.
type Engine struct {
	disp    *Dispatcher
	out     emit.Writer
	refs    schema.References
	printed map[schema.Descriptor]bool
	steps   map[schema.Descriptor]Step
}

func NewEngine(disp *Dispatcher, out emit.Writer) *Engine {
	return &Engine{
		disp:    disp,
		out:     out,
		refs:    make(schema.References),
		printed: make(map[schema.Descriptor]bool),
		steps:   make(map[schema.Descriptor]Step),
	}
}

// discovery records a missing-reference signal: desc was demanded by a
// handler while the engine was working on parent.
type discovery struct {
	parent *doctree.Node
	desc   schema.Descriptor
}

// Render generates the document for root. Recursive types, unsupported
// shapes and configuration errors abort the run; missing references never
// escape, they drive the retry loop.
func (e *Engine) Render(root schema.Descriptor) error {
	tree, err := doctree.Build(root)
	if err != nil {
		return err
	}
	for {
		found, err := e.referencePass(tree)
		if err != nil {
			return err
		}
		if found != nil {
			found.parent.Attach(found.desc)
			continue
		}
		found, err = e.bodyPass(tree)
		if err != nil {
			return err
		}
		if found == nil {
			return nil
		}
		found.parent.Attach(found.desc)
	}
}

// References exposes the resolved reference table, mainly for callers that
// want to inspect a finished run.
func (e *Engine) References() schema.References {
	return e.refs
}

func (e *Engine) step(d schema.Descriptor) (Step, error) {
	if s, ok := e.steps[d]; ok {
		return s, nil
	}
	s, err := e.disp.Step(d)
	if err != nil {
		return nil, err
	}
	e.steps[d] = s
	return s, nil
}

// referencePass walks the tree post-order and resolves every descriptor not
// yet in the table. On a missing-reference signal it stops immediately and
// reports the discovery.
func (e *Engine) referencePass(tree *doctree.Node) (*discovery, error) {
	for _, n := range tree.PostOrder() {
		if _, ok := e.refs[n.Desc]; ok {
			continue
		}
		s, err := e.step(n.Desc)
		if err != nil {
			return nil, err
		}
		ref, err := s.Reference(e.refs)
		if err != nil {
			var missing *schema.MissingReferenceError
			if errors.As(err, &missing) {
				return &discovery{parent: n, desc: missing.Descriptor}, nil
			}
			return nil, err
		}
		e.refs[n.Desc] = ref
	}
	return nil, nil
}

// bodyPass walks the tree pre-order and emits every unprinted section. Each
// body renders into an isolated recorder first: on success it is committed
// to the sink, on a missing-reference signal it is discarded while all
// previously committed sections stay in place.
func (e *Engine) bodyPass(tree *doctree.Node) (*discovery, error) {
	for _, n := range tree.PreOrder() {
		if e.printed[n.Desc] {
			continue
		}
		s, err := e.step(n.Desc)
		if err != nil {
			return nil, err
		}
		buf := &emit.Recorder{}
		if err := s.Body(e.refs, buf); err != nil {
			var missing *schema.MissingReferenceError
			if errors.As(err, &missing) {
				return &discovery{parent: n, desc: missing.Descriptor}, nil
			}
			return nil, err
		}
		if err := buf.Replay(e.out); err != nil {
			return nil, err
		}
		e.printed[n.Desc] = true
	}
	return nil, nil
}
