// Package packer splits a sequence of named payloads into fixed-capacity
// fragments and records where every payload ended up.
//
// A Packer is owned by a single packing run and is not safe for concurrent
// use. Payloads are laid out in the order Append is called.
package packer

import (
	"fmt"

	"github.com/bft-labs/crtools/internal/domain"
)

// DefaultFragmentSize is the capacity of a fragment when none is configured.
const DefaultFragmentSize = 1048576 * 2

// Packer holds the fragment buffers and the write cursor of one packing run.
type Packer struct {
	capacity  int
	fragments [][]byte
	index     int
	offset    int
	refs      domain.References
	finalized bool
}

// New validates capacity and returns a Packer with one empty fragment.
func New(capacity int) (*Packer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: fragment size must be > 0, got %d", domain.ErrInvalidConfiguration, capacity)
	}
	return &Packer{
		capacity:  capacity,
		fragments: [][]byte{make([]byte, capacity)},
		refs:      domain.References{},
	}, nil
}

// Capacity returns the configured fragment size in bytes.
func (p *Packer) Capacity() int { return p.capacity }

// FragmentIndex returns the index of the fragment currently written to.
func (p *Packer) FragmentIndex() int { return p.index }

// Offset returns the number of bytes already written to the current fragment.
func (p *Packer) Offset() int { return p.offset }

// FragmentCount returns the number of fragments allocated so far.
func (p *Packer) FragmentCount() int { return len(p.fragments) }

// Append copies payload at the write cursor, rolling over to new fragments
// as each one fills up, and returns the slices it occupied. An empty payload
// returns an empty reference without touching the cursor.
//
// The slices are also appended to the reference recorded under name, so a
// name appended twice is rebuilt from both payloads in order.
func (p *Packer) Append(name string, payload []byte) (domain.Reference, error) {
	if p.finalized {
		return nil, fmt.Errorf("%w: append %q after finalize", domain.ErrInvalidState, name)
	}

	ref := domain.Reference{}
	src := 0
	for remaining := len(payload); remaining > 0; {
		if p.offset == p.capacity {
			p.fragments = append(p.fragments, make([]byte, p.capacity))
			p.index++
			p.offset = 0
		}

		n := min(remaining, p.capacity-p.offset)
		copy(p.fragments[p.index][p.offset:p.offset+n], payload[src:src+n])
		ref = append(ref, domain.Slice{Fragment: p.index, Start: p.offset, End: p.offset + n})

		p.offset += n
		src += n
		remaining -= n
	}

	if existing, ok := p.refs[name]; ok {
		p.refs[name] = append(existing, ref...)
	} else {
		p.refs[name] = append(domain.Reference{}, ref...)
	}
	return ref, nil
}

// Finalize trims the last fragment to the bytes actually written and hands
// the buffers and reference index to the caller. The Packer cannot be used
// afterwards.
func (p *Packer) Finalize() (*Result, error) {
	if p.finalized {
		return nil, fmt.Errorf("%w: finalize called twice", domain.ErrInvalidState)
	}
	p.finalized = true

	if p.offset < p.capacity {
		p.fragments[p.index] = p.fragments[p.index][:p.offset:p.offset]
	}

	res := &Result{
		Capacity:   p.capacity,
		Fragments:  p.fragments,
		References: p.refs,
	}
	p.fragments = nil
	p.refs = nil
	return res, nil
}
