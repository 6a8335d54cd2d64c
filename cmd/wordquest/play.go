package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordquest/internal/platform/tui"
	"github.com/vovakirdan/wordquest/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing the specified variant (default: wordquest).

Controls:
  a-z          - Type a letter (must be on a tile)
  Mouse        - Click tiles and buttons
  Enter        - Play the word / continue
  Backspace    - Clear the word
  Tab          - Shuffle tiles
  Ctrl+D       - Discard tiles for a fresh draw
  Esc          - Leave the game
  Ctrl+C       - Quit

Difficulty options:
  easy   - 5 words, 4 discards, first target 600
  normal - 4 words, 3 discards, first target 750
  hard   - 3 words, 2 discards, targets grow by 150
  fixed  - Target never grows

Examples:
  wordquest play
  wordquest play wordquest_double
  wordquest play --difficulty easy
  wordquest play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "wordquest"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordquest list' to see available variants.")
		os.Exit(1)
	}

	deps := mustDeps()
	game, err := registry.Create(gameID, deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openSessionLog()
	_, runErr := tui.Run(game, runtimeConfig(), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
