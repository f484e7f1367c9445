package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bft-labs/crtools/internal/domain"
)

const (
	// FragmentExt is the extension of packed fragment files.
	FragmentExt = ".crasset"

	// ReferencesFile is the name of the reference index.
	ReferencesFile = "assets.json"
)

// AssetStore writes packed fragments and the reference index to a directory.
type AssetStore struct {
	dir string
}

// NewAssetStore creates a store for the given output directory.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{dir: dir}
}

// FragmentPath returns the path of fragment index.
func (s *AssetStore) FragmentPath(index int) string {
	return filepath.Join(s.dir, strconv.Itoa(index)+FragmentExt)
}

// ReferencesPath returns the path of assets.json.
func (s *AssetStore) ReferencesPath() string {
	return filepath.Join(s.dir, ReferencesFile)
}

// WriteFragment implements ports.AssetStore.
func (s *AssetStore) WriteFragment(index int, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.FragmentPath(index), data, 0o644)
}

// WriteReferences implements ports.AssetStore.
func (s *AssetStore) WriteReferences(refs domain.References) error {
	data, err := json.Marshal(refs)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.ReferencesPath(), data, 0o644)
}

// ReadFragment implements ports.AssetStore.
func (s *AssetStore) ReadFragment(index int) ([]byte, error) {
	return os.ReadFile(s.FragmentPath(index))
}

// ReadReferences loads assets.json.
func (s *AssetStore) ReadReferences() (domain.References, error) {
	data, err := os.ReadFile(s.ReferencesPath())
	if err != nil {
		return nil, err
	}
	var refs domain.References
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
