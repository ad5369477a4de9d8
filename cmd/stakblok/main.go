package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/log"
	"github.com/plus3/stakblok/metrics"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "stakblok",
	Short: "Falling block puzzle in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
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

		game := NewGame(cfg, logger)
		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return fmt.Errorf("game loop failed: %w", err)
		}
		logger.Info("bye", "stats", fmt.Sprintf("%+v", game.Engine().Stats()))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a config file (yaml, toml or json)")
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("stakblok: %v", err)
		os.Exit(1)
	}
}
