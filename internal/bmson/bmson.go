// Package bmson reads the parts of bmson chart documents used by the
// asset converter and the music catalog.
//
// Charts are decoded from whatever charset they were saved in, stripped of
// comments and trailing commas, and then unmarshalled. Only documents that
// carry a version field are accepted.
package bmson

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bft-labs/crtools/internal/domain"
)

// Extension is the file extension of chart documents.
const Extension = ".bmson"

// Chart is a parsed bmson document.
type Chart struct {
	Version       string         `json:"version"`
	Info          Info           `json:"info"`
	SoundChannels []SoundChannel `json:"sound_channels"`

	// Charset is the encoding the document was decoded from.
	Charset string `json:"-"`
}

// Info is the bmson info header.
type Info struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Genre    string  `json:"genre"`
	Artist   string  `json:"artist"`
	InitBPM  float64 `json:"init_bpm"`
	Level    int     `json:"level"`
	ModeHint string  `json:"mode_hint"`
}

// SoundChannel names one audio asset referenced by the chart.
type SoundChannel struct {
	Name string `json:"name"`
}

// Validate rejects documents that predate the versioned format.
func (c *Chart) Validate() error {
	if c.Version == "" {
		return domain.ErrLegacyChart
	}
	return nil
}

// SoundNames returns the channel names in document order.
func (c *Chart) SoundNames() []string {
	names := make([]string, 0, len(c.SoundChannels))
	for _, ch := range c.SoundChannels {
		names = append(names, ch.Name)
	}
	return names
}

// Metadata converts the info header into a catalog chart entry for file.
func (c *Chart) Metadata(file string) domain.Chart {
	return domain.Chart{
		File:   file,
		Title:  c.Info.Title,
		Genre:  c.Info.Genre,
		Artist: c.Info.Artist,
		BPM:    c.Info.InitBPM,
		Level:  c.Info.Level,
	}
}

// Parse decodes and validates a bmson document.
func Parse(data []byte, fallbackCharset string) (*Chart, error) {
	text, charset, err := Decode(data, fallbackCharset)
	if err != nil {
		return nil, err
	}

	var chart Chart
	if err := json.Unmarshal(jsonc.ToJSON(text), &chart); err != nil {
		return nil, fmt.Errorf("parsing bmson: %w", err)
	}
	chart.Charset = charset

	if err := chart.Validate(); err != nil {
		return nil, err
	}
	return &chart, nil
}

// ReadFile reads and parses the bmson document at path.
func ReadFile(path, fallbackCharset string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	chart, err := Parse(data, fallbackCharset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return chart, nil
}
