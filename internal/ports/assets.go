package ports

import "github.com/bft-labs/crtools/internal/domain"

// AssetSource resolves logical asset names to audio payloads.
type AssetSource interface {
	// Open returns the file name the asset resolved to and its contents.
	// Returns an error wrapping domain.ErrNotFound when no candidate exists.
	Open(name string) (fileName string, data []byte, err error)
}

// AssetStore persists the output of a packing run.
type AssetStore interface {
	// WriteFragment stores fragment index. Fragments are written in index order.
	WriteFragment(index int, data []byte) error

	// WriteReferences stores the reference index.
	WriteReferences(refs domain.References) error

	// ReadFragment reads back a stored fragment.
	ReadFragment(index int) ([]byte, error)
}
