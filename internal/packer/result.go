package packer

import (
	"fmt"

	"github.com/bft-labs/crtools/internal/domain"
)

// Result is the output of a finished packing run.
type Result struct {
	// Capacity is the fragment size the run was packed with.
	Capacity int

	// Fragments holds the fragment buffers in index order. Every fragment but
	// the last is exactly Capacity bytes long.
	Fragments [][]byte

	// References maps each packed name to its slices.
	References domain.References
}

// Size returns the total number of bytes across all fragments.
func (r *Result) Size() int {
	n := 0
	for _, f := range r.Fragments {
		n += len(f)
	}
	return n
}

// Extract rebuilds the payload recorded under name.
func (r *Result) Extract(name string) ([]byte, error) {
	ref, ok := r.References[name]
	if !ok {
		return nil, fmt.Errorf("%w: reference %q", domain.ErrNotFound, name)
	}
	return Assemble(r.Fragments, ref)
}

// Assemble concatenates the byte ranges of ref taken from fragments.
func Assemble(fragments [][]byte, ref domain.Reference) ([]byte, error) {
	out := make([]byte, 0, ref.Size())
	for _, s := range ref {
		if s.Fragment < 0 || s.Fragment >= len(fragments) {
			return nil, fmt.Errorf("slice %v: fragment index out of range (%d fragments)", s, len(fragments))
		}
		frag := fragments[s.Fragment]
		if s.Start < 0 || s.Start >= s.End || s.End > len(frag) {
			return nil, fmt.Errorf("slice %v: range outside fragment of %d bytes", s, len(frag))
		}
		out = append(out, frag[s.Start:s.End]...)
	}
	return out, nil
}
