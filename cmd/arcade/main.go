// arcade is a collection of retro games in one desktop window, a terminal,
// or an SSH session.
//
// Usage:
//
//	arcade                   - Open the desktop window with the game menu
//	arcade list              - List available games
//	arcade play <game>       - Play a game (--tui for the terminal)
//	arcade tui               - Game menu in the terminal
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores and run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific arcade.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Games Hub - nine classic games in one arcade",
	Long: `Retro Games Hub bundles Snake, Tetris, Breakout, Pong, Space Invaders,
Flappy Bird, Asteroids, Memory and Minesweeper behind one menu.

Without a subcommand the arcade opens a desktop window.

Examples:
  arcade
  arcade play tetris --difficulty hard
  arcade play snake --tui
  arcade tui
  arcade serve --ssh :2222
  arcade scores asteroids`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDesktop,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to arcade.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
