package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/crtools/internal/domain"
)

// AssetSource reads audio files referenced by a chart from its directory.
type AssetSource struct {
	dir        string
	extensions []string
}

// NewAssetSource creates a source rooted at dir. When a name does not exist
// as given, its extension is replaced with each of extensions in turn.
func NewAssetSource(dir string, extensions []string) *AssetSource {
	return &AssetSource{dir: dir, extensions: extensions}
}

// Candidates returns the file names tried for name, in order.
func (s *AssetSource) Candidates(name string) []string {
	out := []string{name}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, ext := range s.extensions {
		c := base + "." + ext
		if c != name {
			out = append(out, c)
		}
	}
	return out
}

// Open implements ports.AssetSource.
func (s *AssetSource) Open(name string) (string, []byte, error) {
	if name == "" {
		return "", nil, fmt.Errorf("%w: empty asset name", domain.ErrNotFound)
	}
	for _, candidate := range s.Candidates(name) {
		data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(candidate)))
		if err == nil {
			return candidate, data, nil
		}
		if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, iofs.ErrPermission) {
			continue
		}
		return "", nil, fmt.Errorf("read %s: %w", candidate, err)
	}
	return "", nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
}
