package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordquest/internal/games/wordquest"
	"github.com/vovakirdan/wordquest/internal/platform/tui"
	"github.com/vovakirdan/wordquest/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Word Quest in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  wordquest menu
  wordquest menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	deps := mustDeps()
	cfg := runtimeConfig()

	logger, closeLog := openSessionLog()
	defer closeLog()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.ShowRules {
			goBack, err := tui.RunRules(wordquest.RulesFromConfig(deps.Config.Rules), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID, deps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !goBack {
			return
		}
	}
}
