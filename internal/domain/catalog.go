package domain

// Chart mode keys used in music.json.
const (
	ModeSingle = "single"
	ModeDouble = "double"
)

// Chart is the metadata of one bmson file registered in the catalog.
type Chart struct {
	File   string  `json:"file"`
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Artist string  `json:"artist"`
	BPM    float64 `json:"bpm"`
	Level  int     `json:"level"`
}

// Charts groups charts by play mode.
type Charts struct {
	Single []Chart `json:"single"`
	Double []Chart `json:"double"`
}

// Music is one song folder in the catalog.
type Music struct {
	Title        string `json:"title"`
	Genre        string `json:"genre"`
	Artist       string `json:"artist"`
	BaseDir      string `json:"basedir"`
	PackedAssets bool   `json:"packed_assets"`
	Charts       Charts `json:"charts"`
}

// NewMusic creates an empty entry for the given folder.
func NewMusic(baseDir string) Music {
	return Music{
		BaseDir: baseDir,
		Charts:  Charts{Single: []Chart{}, Double: []Chart{}},
	}
}

// HasChart reports whether file is registered in any mode.
func (m *Music) HasChart(file string) bool {
	return len(m.FindCharts(file)) > 0
}

// ChartRef pairs a chart with the mode it is registered under.
type ChartRef struct {
	Mode  string
	Chart Chart
}

// FindCharts returns every chart registered for file, single charts first.
func (m *Music) FindCharts(file string) []ChartRef {
	var out []ChartRef
	for _, c := range m.Charts.Single {
		if c.File == file {
			out = append(out, ChartRef{Mode: ModeSingle, Chart: c})
		}
	}
	for _, c := range m.Charts.Double {
		if c.File == file {
			out = append(out, ChartRef{Mode: ModeDouble, Chart: c})
		}
	}
	return out
}

// RemoveChart drops file from both modes and reports whether anything was removed.
func (m *Music) RemoveChart(file string) bool {
	before := len(m.Charts.Single) + len(m.Charts.Double)
	m.Charts.Single = filterCharts(m.Charts.Single, file)
	m.Charts.Double = filterCharts(m.Charts.Double, file)
	return len(m.Charts.Single)+len(m.Charts.Double) != before
}

// AddChart appends c to the single mode list.
func (m *Music) AddChart(c Chart) {
	m.Charts.Single = append(m.Charts.Single, c)
}

func filterCharts(charts []Chart, file string) []Chart {
	out := make([]Chart, 0, len(charts))
	for _, c := range charts {
		if c.File != file {
			out = append(out, c)
		}
	}
	return out
}

// Catalog is the ordered list of music entries stored in music.json.
type Catalog []Music

// Find returns the entry for baseDir, or nil.
func (c Catalog) Find(baseDir string) *Music {
	for i := range c {
		if c[i].BaseDir == baseDir {
			return &c[i]
		}
	}
	return nil
}

// Remove returns the catalog without entries for baseDir and whether any were dropped.
func (c Catalog) Remove(baseDir string) (Catalog, bool) {
	out := make(Catalog, 0, len(c))
	for _, m := range c {
		if m.BaseDir != baseDir {
			out = append(out, m)
		}
	}
	return out, len(out) != len(c)
}
