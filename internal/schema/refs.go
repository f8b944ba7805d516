package schema

import "fmt"

// References maps every resolved descriptor to its short reference text.
// It is append-only within one resolution run, and only the resolution
// engine writes to it; handlers read through Lookup.
type References map[Descriptor]string

// Lookup returns the reference text for d. A miss returns a
// *MissingReferenceError — the resolution engine treats that as a dependency
// discovery and re-plans, so handlers should propagate it unchanged.
func (r References) Lookup(d Descriptor) (string, error) {
	if ref, ok := r[d]; ok {
		return ref, nil
	}
	return "", &MissingReferenceError{Descriptor: d}
}

// MissingReferenceError signals that a handler needed a reference that has
// not been computed yet. It is internal control flow: a completed run never
// surfaces it.
type MissingReferenceError struct {
	Descriptor Descriptor
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference to %q", describe(e.Descriptor))
}

// UnsupportedTypeError reports a descriptor shape no handler covers.
type UnsupportedTypeError struct {
	Descriptor Descriptor
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported descriptor shape %q", describe(e.Descriptor))
}
