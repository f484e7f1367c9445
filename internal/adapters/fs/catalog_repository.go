package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tidwall/jsonc"

	"github.com/bft-labs/crtools/internal/domain"
)

// CatalogRepository implements ports.CatalogRepository using a JSON file.
type CatalogRepository struct {
	path string
	lock *flock.Flock
}

// NewCatalogRepository creates a repository for dir/name.
func NewCatalogRepository(dir, name string) *CatalogRepository {
	path := filepath.Join(dir, name)
	return &CatalogRepository{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the full path to the catalog file.
func (r *CatalogRepository) Path() string {
	return r.path
}

// Load reads the catalog. Comments and trailing commas left by hand edits
// are accepted.
func (r *CatalogRepository) Load() (domain.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, r.path)
		}
		return nil, err
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(jsonc.ToJSON(data), &catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	for i := range catalog {
		normalize(&catalog[i])
	}
	return catalog, nil
}

// Save persists the catalog atomically with two-space indentation.
func (r *CatalogRepository) Save(catalog domain.Catalog) error {
	if catalog == nil {
		catalog = domain.Catalog{}
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, data, 0o644)
}

// Lock takes the catalog lock without blocking.
func (r *CatalogRepository) Lock() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	ok, err := r.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrCatalogLocked, r.lock.Path())
	}
	return nil
}

// Unlock releases the catalog lock.
func (r *CatalogRepository) Unlock() error {
	return r.lock.Unlock()
}

// normalize replaces null chart lists so they serialize back as [].
func normalize(m *domain.Music) {
	if m.Charts.Single == nil {
		m.Charts.Single = []domain.Chart{}
	}
	if m.Charts.Double == nil {
		m.Charts.Double = []domain.Chart{}
	}
}
