package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var flagTUI bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start the specified game directly. Esc returns to the menu.

Controls:
  Arrows/WASD  - Move
  Space        - Action (shoot, flap, drop, reveal)
  P            - Pause
  Space/Enter/R - Restart after the game ends
  Esc          - Back to the menu

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play minesweeper --tui`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runPlay,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the game menu in the terminal",
	Long: `Run the arcade in the current terminal. Games are drawn with block
characters and colors; the mouse works for Memory and Minesweeper.

Logs are written to log.file (default ~/.arcade/arcade.log) while the
terminal is in use.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play in the terminal instead of a window")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	e, err := setup(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if flagTUI {
		return e.runTerminal(gameID)
	}
	return e.runWindow(gameID)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.runTerminal("")
}
