// invaders is a Space Invaders style game for the terminal.
//
// Usage:
//
//	invaders                 - Play
//	invaders scores          - Show the best recorded runs
//	invaders snapshot        - Print a sample playfield and exit
//
// Global flags:
//
//	--config <path>      - Load configuration from a YAML file
//	--high-score <path>  - Set the high score file (default: high_score.txt)
//	--db <path>          - Set the run history database ("" disables it)
//	--mute               - Disable sound
//	--log <path>         - Write a debug log to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	// Global flags
	flagConfig    string
	flagHighScore string
	flagDBPath    string
	flagMute      bool
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bottom row from a marching formation",
	Long: `Invaders is a terminal game on a 40x20 grid. Move left and right,
shoot the formation down before it reaches your row.

Controls:
  ` + tui.DefaultKeyMap().HelpText() + `

Available commands:
  scores   - View the best recorded runs
  snapshot - Print a sample playfield

Examples:
  invaders
  invaders --mute
  invaders --config ./my-invaders.yaml
  invaders scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", "", "Path to the high score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) config.InvadersConfig {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	if flagHighScore != "" {
		cfg.Paths.HighScore = flagHighScore
	}
	if cmd.Flags().Changed("db") {
		cfg.Paths.History = flagDBPath
	}
	return cfg
}

// newLogger returns a file logger when --log is set and a silent one
// otherwise. The screen belongs to the game, so nothing is logged there.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = tui.Run(ctx, tui.Options{
		Config: cfg,
		Mute:   flagMute,
		Logger: logger,
	})
	stop()
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
