package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"showdown-calcbot/config"
	"showdown-calcbot/data"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configDir string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "calcbot",
		Short: "Pokémon Showdown damage-calc chat bot",
		Long: `calcbot reads battle scenarios such as

  252+ Atk Garchomp @ Choice Band using Earthquake vs 252 HP / 4 Def Toxapex in Sand with Stealth Rock

and turns them into structured calc requests, either from the command line
(calcbot parse) or from Showdown chat (calcbot listen).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", ".", "directory containing calcbot.yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newParseCmd(a), newListenCmd(a))
	return root
}

func (a *app) init() error {
	viper.Reset()
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid logLevel %q: %w", cfg.LogLevel, err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return loadData(cfg.Data, a.logger)
}

func loadData(dc config.DataConfig, log *zap.Logger) error {
	loaders := []struct {
		path string
		load func(string) error
	}{
		{dc.Pokedex, data.LoadPokemonData},
		{dc.Moves, data.LoadMoveData},
		{dc.Items, data.LoadItemData},
	}
	for _, l := range loaders {
		if l.path == "" {
			continue
		}
		if err := l.load(l.path); err != nil {
			return fmt.Errorf("loading %s: %w", l.path, err)
		}
		log.Debug("loaded data", zap.String("path", l.path))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
