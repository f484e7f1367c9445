package ports

import "github.com/bft-labs/crtools/internal/domain"

// CatalogRepository persists the music catalog.
type CatalogRepository interface {
	// Load reads the catalog. A missing file is reported with an error
	// wrapping domain.ErrNotFound.
	Load() (domain.Catalog, error)

	// Save writes the catalog atomically.
	Save(catalog domain.Catalog) error

	// Lock takes an exclusive lock on the catalog for the editing session.
	Lock() error

	// Unlock releases the lock taken by Lock.
	Unlock() error
}

// ChartReader reads chart metadata from disk.
type ChartReader interface {
	// ReadChart parses the bmson file at path. The returned chart has no File set.
	ReadChart(path string) (domain.Chart, error)

	// ListCharts returns the names of the bmson files directly inside dir.
	ListCharts(dir string) ([]string, error)
}

// Prompter asks the user to confirm an action.
type Prompter interface {
	// YesNo asks message and returns the answer, or defaultYes when the
	// user just presses enter.
	YesNo(message string, defaultYes bool) (bool, error)
}
