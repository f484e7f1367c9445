package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/crtools/pkg/log"
)

// DefaultWatchDebounce is how long Watch waits for file events to settle.
const DefaultWatchDebounce = 200 * time.Millisecond

// WatchConfig controls which file changes trigger a repack.
type WatchConfig struct {
	// Extensions are the audio extensions whose changes trigger a repack,
	// in addition to the chart itself.
	Extensions []string

	// Debounce defaults to DefaultWatchDebounce.
	Debounce time.Duration

	// OnRun, when set, is called after every packing run.
	OnRun func(*Summary, error)
}

// Watch packs input once and then again whenever the chart or one of the
// audio files next to it is written. It returns when ctx is canceled.
func (c *Converter) Watch(ctx context.Context, input string, cfg WatchConfig) error {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	c.runOnce(ctx, input, cfg)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !watched(event.Name, input, cfg.Extensions) {
				continue
			}
			c.logger.Debug("change detected", log.String("file", event.Name), log.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(cfg.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(cfg.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			c.runOnce(ctx, input, cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (c *Converter) runOnce(ctx context.Context, input string, cfg WatchConfig) {
	summary, err := c.Run(ctx, input)
	if err != nil {
		c.logger.Error("pack failed", log.Err(err))
	} else {
		c.logger.Info("pack finished",
			log.Int("fragments", summary.Fragments),
			log.Int("assets", summary.Assets),
			log.Strings("missing", summary.Missing),
		)
	}
	if cfg.OnRun != nil {
		cfg.OnRun(summary, err)
	}
}

// watched reports whether a change to name should trigger a repack. Packer
// output (fragments and assets.json) never matches, so writing into the
// chart directory does not retrigger.
func watched(name, input string, extensions []string) bool {
	if filepath.Clean(name) == filepath.Clean(input) {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
