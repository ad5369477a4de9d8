package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stakblok/config"
	"github.com/plus3/stakblok/log"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	sessions       int
	duration       time.Duration
	gcPauseMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "stakblok-sim",
	Short: "Play headless games with random input and report engine timings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger, closer, err := log.InitLog(cfg.AppName+"-sim", cfg.Log.Level, cfg.Log.Path)
		if err != nil {
			return err
		}
		defer closer.Close()

		log.Debug("config: %+v", *cfg)
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		report := &Report{
			Duration:       duration,
			Sessions:       sessions,
			Width:          cfg.Board.Width,
			Height:         cfg.Board.Height,
			Seed:           seed,
			GCPauseMetrics: gcPauseMetrics,
		}
		runtime.ReadMemStats(&report.MemStatsStart)

		logger.Info("starting simulation", "sessions", sessions, "duration", duration, "seed", seed)
		ctx, cancel := context.WithTimeout(cmd.Context(), duration)
		defer cancel()

		sim := NewSimulator(cfg, seed, logger)
		startTime := time.Now()
		report.Results = sim.Run(ctx, sessions)
		report.TotalTime = time.Since(startTime)
		runtime.ReadMemStats(&report.MemStatsEnd)
		report.Finalize()

		logger.Info("simulation finished", "played", len(report.Results), "elapsed", report.TotalTime)

		fmt.Println("\n--- Simulation Report ---")
		if err := report.Generate(os.Stdout); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		fmt.Println("--- End of Report ---")
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, toml or json)")
	flags.IntVar(&sessions, "sessions", 100, "number of games to play")
	flags.DurationVar(&duration, "duration", 30*time.Second, "stop after this much wall time")
	flags.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "include GC pause totals in the report")
	config.RegisterFlags(flags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("stakblok-sim: %v", err)
		os.Exit(1)
	}
}
