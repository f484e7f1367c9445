package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/bft-labs/crtools/internal/bmson"
	"github.com/bft-labs/crtools/internal/domain"
	"github.com/bft-labs/crtools/internal/packer"
	"github.com/bft-labs/crtools/internal/ports"
	"github.com/bft-labs/crtools/pkg/log"
)

// ConverterConfig contains configuration for a packing run.
type ConverterConfig struct {
	FragmentSize    int
	FallbackCharset string
	Verify          bool
}

// Summary describes the output of one packing run.
type Summary struct {
	Fragments int
	Assets    int
	Bytes     int
	Missing   []string
}

// Converter packs the sound channels of a bmson chart into fragments.
type Converter struct {
	config ConverterConfig
	source ports.AssetSource
	store  ports.AssetStore
	logger log.Logger
}

// NewConverter creates a new converter with the given dependencies.
func NewConverter(config ConverterConfig, source ports.AssetSource, store ports.AssetStore, logger log.Logger) *Converter {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Converter{
		config: config,
		source: source,
		store:  store,
		logger: logger,
	}
}

// Run packs every sound channel listed in the chart at input. Channels whose
// file cannot be found are logged and left out of the reference index.
func (c *Converter) Run(ctx context.Context, input string) (*Summary, error) {
	chart, err := bmson.ReadFile(input, c.config.FallbackCharset)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("chart decoded", log.String("path", input), log.String("charset", chart.Charset))

	p, err := packer.New(c.config.FragmentSize)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	seen := make(map[string]bool)
	for _, name := range chart.SoundNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seen[name] {
			c.logger.Warn("duplicate sound channel skipped", log.String("channel", name))
			continue
		}
		seen[name] = true

		file, data, err := c.source.Open(name)
		if errors.Is(err, domain.ErrNotFound) {
			c.logger.Error("file not found", log.String("channel", name))
			summary.Missing = append(summary.Missing, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", name, err)
		}

		fields := []log.Field{log.String("channel", name), log.Int("bytes", len(data))}
		if file != name {
			fields = append(fields, log.String("file", file))
		}
		c.logger.Info("packing asset", fields...)

		ref, err := p.Append(name, data)
		if err != nil {
			return nil, err
		}
		for _, s := range ref {
			c.logger.Debug("slice",
				log.String("channel", name),
				log.Int("fragment", s.Fragment),
				log.Int("start", s.Start),
				log.Int("end", s.End),
			)
		}
		summary.Assets++
	}

	res, err := p.Finalize()
	if err != nil {
		return nil, err
	}
	if err := c.persist(res); err != nil {
		return nil, err
	}
	summary.Fragments = len(res.Fragments)
	summary.Bytes = res.Size()

	if c.config.Verify {
		if err := c.verify(res); err != nil {
			return summary, err
		}
		c.logger.Info("verified output", log.Int("assets", len(res.References)))
	}
	return summary, nil
}

func (c *Converter) persist(res *packer.Result) error {
	for i, frag := range res.Fragments {
		if err := c.store.WriteFragment(i, frag); err != nil {
			return fmt.Errorf("write fragment %d: %w", i, err)
		}
		c.logger.Info("saved fragment", log.Int("index", i), log.String("size", humanize.IBytes(uint64(len(frag)))))
	}
	if err := c.store.WriteReferences(res.References); err != nil {
		return fmt.Errorf("write references: %w", err)
	}
	c.logger.Info("saved references", log.Int("assets", len(res.References)))
	return nil
}

// verify reads the stored fragments back and checks that every reference
// rebuilds the bytes its source currently holds.
func (c *Converter) verify(res *packer.Result) error {
	stored := make([][]byte, len(res.Fragments))
	for i := range res.Fragments {
		data, err := c.store.ReadFragment(i)
		if err != nil {
			return fmt.Errorf("%w: read fragment %d: %v", domain.ErrVerification, i, err)
		}
		if !bytes.Equal(data, res.Fragments[i]) {
			return fmt.Errorf("%w: fragment %d differs from packed data", domain.ErrVerification, i)
		}
		stored[i] = data
	}

	names := make([]string, 0, len(res.References))
	for name := range res.References {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		got, err := packer.Assemble(stored, res.References[name])
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrVerification, name, err)
		}
		_, want, err := c.source.Open(name)
		if err != nil {
			return fmt.Errorf("%w: reopen %s: %v", domain.ErrVerification, name, err)
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%w: %s does not match its source", domain.ErrVerification, name)
		}
	}
	return nil
}
