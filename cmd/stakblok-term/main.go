package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/log"
	"github.com/plus3/stakblok/metrics"
	"github.com/plus3/stakblok/tetris"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "stakblok-term",
	Short: "Falling block puzzle in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		// Logging to stdout would draw over the screen.
		if cfg.Log.Path == "" {
			cfg.Log.Path = filepath.Join(os.TempDir(), "stakblok-term.log")
		}

		logger, closer, err := log.InitLog(cfg.AppName, cfg.Log.Level, cfg.Log.Path)
		if err != nil {
			return err
		}
		defer closer.Close()

		log.Debug("config: %+v", *cfg)
		if cfg.MetricPort != 0 {
			log.Info("serving metrics at http://localhost:%d/debug/statsviz/", cfg.MetricPort)
		}
		metrics.Start(cfg.MetricPort, func(err error) {
			logger.Error("metrics server stopped", "err", err)
		})

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to init screen: %w", err)
		}
		defer screen.Fini()

		newEngine := func() *tetris.Engine {
			engine := tetris.NewEngine(cfg.Board.Width, cfg.Board.Height, cfg.EngineOptions(
				tetris.WithClock(tetris.TickerClock{}),
				tetris.WithLogger(logger),
			)...)
			logger.Info("new game", "session", engine.SessionID())
			return engine
		}

		ui := newTermUI(screen, newEngine)
		ui.run()
		logger.Info("bye", "stats", fmt.Sprintf("%+v", ui.engine.Stats()))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, toml or json)")
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("stakblok-term: %v", err)
		os.Exit(1)
	}
}
