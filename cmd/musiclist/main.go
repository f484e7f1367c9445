package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/crtools/internal/adapters/fs"
	"github.com/bft-labs/crtools/internal/app"
	"github.com/bft-labs/crtools/internal/cliconfig"
	"github.com/bft-labs/crtools/internal/domain"
	"github.com/bft-labs/crtools/internal/prompt"
	"github.com/bft-labs/crtools/pkg/log"
)

const longHelp = `Edit the music catalog (music.json) of a song directory.

Commands:
  add <target>...     register music folders or single charts
  remove <target>...  remove music folders or single charts
  list [target]...    show the catalog, or details for the given targets
  arrange             reorder the catalog (not supported)

A target is a folder under <basedir> ("song") or one chart in it
("song:hyper.bmson").`

var exampleUsage = strings.TrimSpace(`
  musiclist songs add song1 song2:another.bmson
  musiclist songs remove song1:hyper.bmson
  musiclist songs list
  musiclist -y songs add song3
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultCatalogConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "musiclist <basedir> <command> [targets...]",
		Short:         "Edit the music catalog of a song directory",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.BaseDir = args[0]
			command, targets := args[1], args[2:]

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
				if err := cliconfig.ApplyCatalogFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// CRTOOLS_* override the file but not flags
			if err := cliconfig.ApplyCatalogEnvConfig(&cfg, changed); err != nil {
				return err
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

			editor := app.NewEditor(
				cfg.BaseDir,
				fs.NewCatalogRepository(cfg.BaseDir, cfg.CatalogName),
				fs.NewChartReader(cfg.FallbackCharset),
				prompt.New(os.Stdin, os.Stdout, prompt.WithAssumeDefaults(cfg.AssumeYes)),
				log.NewZerologAdapterWithLogger(logger),
			)

			switch command {
			case "add":
				return editor.Add(targets)
			case "remove":
				return editor.Remove(targets)
			case "list":
				listing, err := editor.List(targets)
				if err != nil {
					return err
				}
				printListing(os.Stdout, listing, len(targets) == 0, prompt.IsTerminal(os.Stdout))
				return nil
			case "arrange":
				return editor.Arrange()
			default:
				return fmt.Errorf("%w: unknown command %q", domain.ErrInvalidConfiguration, command)
			}
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.crtools/config.toml)")
	root.Flags().StringVar(&cfg.CatalogName, "catalog", cfg.CatalogName, "catalog file name inside <basedir>")
	root.Flags().StringVar(&cfg.FallbackCharset, "charset", cfg.FallbackCharset, "charset of charts that are not UTF-8")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "answer every question with its default")
	// targets such as "-weird-dir" must not be parsed as flags
	root.Flags().SetInterspersed(false)

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("musiclist")
		os.Exit(1)
	}
}
