package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bft-labs/crtools/internal/domain"
	"github.com/bft-labs/crtools/internal/ports"
	"github.com/bft-labs/crtools/pkg/log"
)

// Target addresses a music folder ("dir") or one chart in it ("dir:chart.bmson").
type Target struct {
	Raw   string
	Dir   string
	Chart string
}

// ParseTarget splits a command line target.
func ParseTarget(s string) Target {
	dir, chart, _ := strings.Cut(s, ":")
	if i := strings.IndexByte(chart, ':'); i >= 0 {
		chart = chart[:i]
	}
	return Target{Raw: s, Dir: dir, Chart: chart}
}

// IsChart reports whether the target names a single chart.
func (t Target) IsChart() bool {
	return t.Chart != ""
}

// Editor applies musiclist commands to the catalog.
type Editor struct {
	baseDir string
	repo    ports.CatalogRepository
	charts  ports.ChartReader
	prompt  ports.Prompter
	logger  log.Logger
}

// NewEditor creates an editor for the catalog of baseDir.
func NewEditor(baseDir string, repo ports.CatalogRepository, charts ports.ChartReader, prompt ports.Prompter, logger log.Logger) *Editor {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Editor{
		baseDir: baseDir,
		repo:    repo,
		charts:  charts,
		prompt:  prompt,
		logger:  logger,
	}
}

// Add registers the given folders or charts. The catalog is saved after
// each target.
func (e *Editor) Add(targets []string) (err error) {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no target", domain.ErrInvalidConfiguration)
	}
	if err := e.repo.Lock(); err != nil {
		return err
	}
	defer func() {
		if uerr := e.repo.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	catalog, err := e.load(true)
	if err != nil {
		return err
	}

	for _, raw := range targets {
		t := ParseTarget(raw)
		if t.IsChart() {
			catalog, err = e.addChartTarget(catalog, t)
		} else {
			catalog, err = e.addMusicTarget(catalog, t)
		}
		if err != nil {
			return err
		}

		e.logger.Info("updating catalog", log.String("path", catalogPath(e.repo)))
		if err := e.repo.Save(catalog); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
	}
	return nil
}

func (e *Editor) addChartTarget(catalog domain.Catalog, t Target) (domain.Catalog, error) {
	m := catalog.Find(t.Dir)
	if m == nil {
		return e.addEntry(catalog, t.Dir, []string{t.Chart})
	}

	if m.HasChart(t.Chart) {
		ok, err := e.prompt.YesNo("Chart already found in catalog, overwrite? (y/N) ", false)
		if err != nil {
			return catalog, err
		}
		if !ok {
			e.logger.Info("skipping", log.String("target", t.Raw))
			return catalog, nil
		}
	}

	chart, err := e.readChart(t.Dir, t.Chart)
	if err != nil {
		e.logger.Error("load failed", log.String("target", t.Raw), log.Err(err))
		return catalog, nil
	}
	m.RemoveChart(t.Chart)
	m.AddChart(chart)
	e.logger.Info("added chart", chartFields(chart)...)
	return catalog, nil
}

func (e *Editor) addMusicTarget(catalog domain.Catalog, t Target) (domain.Catalog, error) {
	names, err := e.charts.ListCharts(filepath.Join(e.baseDir, t.Dir))
	if err != nil {
		e.logger.Error("load failed", log.String("target", t.Raw), log.Err(err))
		return catalog, nil
	}
	if len(names) == 0 {
		e.logger.Info("no bmson found", log.String("target", t.Raw))
		return catalog, nil
	}
	for _, name := range names {
		e.logger.Info("found chart", log.String("target", t.Dir+":"+name))
	}
	e.logger.Info("charts found", log.Int("count", len(names)))

	if catalog.Find(t.Dir) != nil {
		ok, err := e.prompt.YesNo("Entry already found in catalog, overwrite? (y/N) ", false)
		if err != nil {
			return catalog, err
		}
		if !ok {
			e.logger.Info("skipping", log.String("target", t.Raw))
			return catalog, nil
		}
		catalog, _ = catalog.Remove(t.Dir)
	}
	return e.addEntry(catalog, t.Dir, names)
}

// addEntry creates a new music entry from charts. The first chart supplies
// the title, genre and artist.
func (e *Editor) addEntry(catalog domain.Catalog, dir string, charts []string) (domain.Catalog, error) {
	m := domain.NewMusic(dir)
	packed, err := e.prompt.YesNo("Packed assets? (Y/n) ", true)
	if err != nil {
		return catalog, err
	}
	m.PackedAssets = packed

	for i, name := range charts {
		chart, err := e.readChart(dir, name)
		if err != nil {
			e.logger.Error("load failed", log.String("target", dir+":"+name), log.Err(err))
			return catalog, nil
		}
		if i == 0 {
			m.Title, m.Genre, m.Artist = chart.Title, chart.Genre, chart.Artist
			e.logger.Info("taking music info",
				log.String("title", m.Title),
				log.String("genre", m.Genre),
				log.String("artist", m.Artist),
			)
		}
		m.AddChart(chart)
		e.logger.Info("added chart", chartFields(chart)...)
	}
	return append(catalog, m), nil
}

func (e *Editor) readChart(dir, name string) (domain.Chart, error) {
	chart, err := e.charts.ReadChart(filepath.Join(e.baseDir, dir, name))
	if err != nil {
		return domain.Chart{}, err
	}
	chart.File = name
	return chart, nil
}

// Remove deletes the given folders or charts after confirmation.
func (e *Editor) Remove(targets []string) (err error) {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no target", domain.ErrInvalidConfiguration)
	}
	if err := e.repo.Lock(); err != nil {
		return err
	}
	defer func() {
		if uerr := e.repo.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	catalog, err := e.load(false)
	if err != nil {
		return err
	}

	for _, raw := range targets {
		t := ParseTarget(raw)
		ok, err := e.prompt.YesNo(fmt.Sprintf("Do you really want to remove %s ? (Y/n) ", raw), true)
		if err != nil {
			return err
		}
		if !ok {
			e.logger.Info("skipping", log.String("target", raw))
			continue
		}

		removed := false
		if t.IsChart() {
			if m := catalog.Find(t.Dir); m != nil {
				removed = m.RemoveChart(t.Chart)
			}
		} else {
			catalog, removed = catalog.Remove(t.Dir)
		}
		if !removed {
			e.logger.Error("no entry", log.String("target", raw))
			continue
		}
		e.logger.Info("removed", log.String("target", raw))
	}

	e.logger.Info("updating catalog", log.String("path", catalogPath(e.repo)))
	if err := e.repo.Save(catalog); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Detail is the listing of one target.
type Detail struct {
	Target string
	Music  *domain.Music
	Charts []domain.ChartRef
}

// Listing is the result of List. With no targets Musics holds the whole
// catalog; otherwise Details holds one entry per target that was found.
type Listing struct {
	Musics  domain.Catalog
	Details []Detail
}

// List looks up targets, or the whole catalog when none are given.
func (e *Editor) List(targets []string) (*Listing, error) {
	catalog, err := e.load(false)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return &Listing{Musics: catalog}, nil
	}

	listing := &Listing{}
	for _, raw := range targets {
		t := ParseTarget(raw)
		m := catalog.Find(t.Dir)
		if m == nil {
			e.logger.Error("no entry", log.String("target", raw))
			continue
		}
		if !t.IsChart() {
			listing.Details = append(listing.Details, Detail{Target: raw, Music: m})
			continue
		}
		refs := m.FindCharts(t.Chart)
		if len(refs) == 0 {
			e.logger.Error("no entry", log.String("target", raw))
			continue
		}
		listing.Details = append(listing.Details, Detail{Target: raw, Charts: refs})
	}
	return listing, nil
}

// Arrange reorders the catalog. It has never been implemented.
func (e *Editor) Arrange() error {
	return domain.ErrNotSupported
}

// load reads the catalog. With create set, a missing or unreadable catalog
// can be replaced by an empty one after confirmation.
func (e *Editor) load(create bool) (domain.Catalog, error) {
	catalog, err := e.repo.Load()
	if err == nil {
		return catalog, nil
	}
	if !create {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("catalog not found: %w", err)
		}
		return nil, err
	}

	e.logger.Warn("catalog not found or invalid", log.Err(err))
	ok, perr := e.prompt.YesNo("Catalog not found or invalid, create new? (Y/n) ", true)
	if perr != nil {
		return nil, perr
	}
	if !ok {
		return nil, domain.ErrAborted
	}
	return domain.Catalog{}, nil
}

func chartFields(c domain.Chart) []log.Field {
	return []log.Field{
		log.String("file", c.File),
		log.String("title", c.Title),
		log.String("genre", c.Genre),
		log.String("artist", c.Artist),
	}
}

type pather interface {
	Path() string
}

func catalogPath(repo ports.CatalogRepository) string {
	if p, ok := repo.(pather); ok {
		return p.Path()
	}
	return ""
}
