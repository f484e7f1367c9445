package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/crtools/internal/adapters/fs"
	"github.com/bft-labs/crtools/internal/app"
	"github.com/bft-labs/crtools/internal/cliconfig"
	"github.com/bft-labs/crtools/internal/packer"
	"github.com/bft-labs/crtools/pkg/log"
)

const longHelp = `Pack the sound files referenced by a bmson chart into fixed-size fragments.

Each fragment is written as <n>.crasset next to an assets.json index that maps
every sound name to the fragment slices holding its bytes. Sound files that are
missing under their own name are looked up with the --ext extensions instead.`

var exampleUsage = strings.TrimSpace(`
  assetconv song/normal.bmson
  assetconv -s 4MiB -o out/ --verify song/normal.bmson
  assetconv --watch song/normal.bmson
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultPackConfig()
	var cfgPath, size string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "assetconv <chart.bmson>",
		Short:         "Pack bmson sound files into fragment files",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = args[0]

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyPackFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// CRTOOLS_* override the file but not flags
			if err := cliconfig.ApplyPackEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if changed["size"] {
				n, err := cliconfig.ParseFragmentSize(size)
				if err != nil {
					return err
				}
				cfg.FragmentSize = n
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := cliconfig.ParseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = logger.Level(level)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			converter := app.NewConverter(
				app.ConverterConfig{
					FragmentSize:    cfg.FragmentSize,
					FallbackCharset: cfg.FallbackCharset,
					Verify:          cfg.Verify,
				},
				fs.NewAssetSource(filepath.Dir(cfg.Input), cfg.Extensions),
				fs.NewAssetStore(cfg.OutputDir),
				log.NewZerologAdapterWithLogger(logger),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				logger.Info().Str("input", cfg.Input).Msg("watching for changes, press Ctrl+C to stop")
				return converter.Watch(ctx, cfg.Input, app.WatchConfig{Extensions: cfg.Extensions})
			}

			summary, err := converter.Run(ctx, cfg.Input)
			if err != nil {
				return err
			}
			logger.Info().
				Int("fragments", summary.Fragments).
				Int("assets", summary.Assets).
				Str("size", humanize.IBytes(uint64(summary.Bytes))).
				Strs("missing", summary.Missing).
				Msg("done")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.crtools/config.toml)")
	root.Flags().StringVarP(&cfg.OutputDir, "output", "o", "", "output directory (defaults to the chart's directory)")
	root.Flags().StringVarP(&size, "size", "s", fmt.Sprint(packer.DefaultFragmentSize), "fragment size in bytes, units such as 2MiB are accepted")
	root.Flags().StringSliceVar(&cfg.Extensions, "ext", cfg.Extensions, "extensions tried when a sound file is missing")
	root.Flags().StringVar(&cfg.FallbackCharset, "charset", cfg.FallbackCharset, "charset of charts that are not UTF-8")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Verify, "verify", cfg.Verify, "read the output back and compare it with the sources")
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "repack whenever the chart or its sounds change")

	if err := root.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("interrupted")
		} else {
			logger.Error().Err(err).Msg("assetconv")
		}
		os.Exit(1)
	}
}
