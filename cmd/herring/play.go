package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/herring/internal/core"
	"github.com/vovakirdan/herring/internal/games/herring"
	"github.com/vovakirdan/herring/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/K/Click - Flap (also starts and restarts)
  P                  - Pause
  R                  - Restart (after game over)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

The game draws on the whole terminal, so logs go to --log-file
and are discarded otherwise.

Examples:
  herring play
  herring play --seed 42
  herring play --config ./my-herring.yaml --log-file herring.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "herring")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	logger.Info("starting game", "config", gameCfg.Source, "seed", cfg.Seed, "fps", cfg.TickRate)
	engine := herring.New(gameCfg, cfg.Seed)

	if runErr := tui.Run(engine, cfg, logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
