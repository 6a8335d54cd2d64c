// wordquest is a terminal word-building game: spell words from twelve drawn
// letter tiles to reach each round's score target.
//
// Usage:
//
//	wordquest                     - Start the menu
//	wordquest play [variant]      - Play a variant directly
//	wordquest menu                - Start the menu
//	wordquest list                - List game variants
//	wordquest rules               - Print the rules and letter values
//	wordquest check <word>...     - Score words against the dictionary
//	wordquest cache info|rebuild  - Inspect or rebuild the dictionary cache
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible tile draws
//	--config <path>        - Load a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--dict <path>          - Raw dictionary source (word frequency JSON)
//	--cache <path>         - Dictionary cache location
//	--verbose              - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wordquest/internal/games/wordquest"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDict       string
	flagCache      string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordquest",
	Short: "Word Quest - spell words from letter tiles in your terminal",
	Long: `Word Quest is a terminal word-building game. Each round draws twelve
letter tiles; spell dictionary words with them to reach the round's
score target before your word submissions run out.

Available commands:
  play     - Play a variant directly
  menu     - Interactive menu (default)
  list     - Show all game variants
  rules    - Print the rules and letter values
  check    - Score words against the dictionary
  cache    - Inspect or rebuild the dictionary cache

Examples:
  wordquest
  wordquest play wordquest_double
  wordquest play --difficulty hard --seed 42
  wordquest check quiz jazz
  wordquest cache rebuild --dict ./words_dictionary.json`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Raw dictionary source (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCache, "cache", "", "Dictionary cache path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cacheCmd)
}
